package pqb

import "strconv"

type columnTypeKind int

const (
	typeChar columnTypeKind = iota
	typeVarChar
	typeText
	typeBytea
	typeSmallInt
	typeInt
	typeBigInt
	typeFloat
	typeDouble
	typeNumeric
	typeSmallSerial
	typeSerial
	typeBigSerial
	typeInt4Range
	typeInt8Range
	typeNumRange
	typeTsRange
	typeTstzRange
	typeDateRange
	typeDateTime
	typeTimestamp
	typeTimestampWithTimeZone
	typeTime
	typeDate
	typeBoolean
	typeJSON
	typeJSONBinary
	typeUUID
	typeArray
)

// ColumnType is a PostgreSQL column data type.
type ColumnType struct {
	kind      columnTypeKind
	size      uint
	precision uint
	scale     uint
	elem      *ColumnType
}

// TypeChar is char(n). Zero size panics.
func TypeChar(n uint) ColumnType {
	if n == 0 {
		panic("A char column cannot have zero size.")
	}
	return ColumnType{kind: typeChar, size: n}
}

// TypeVarChar is varchar(n). Zero size panics.
func TypeVarChar(n uint) ColumnType {
	if n == 0 {
		panic("A varchar column cannot have zero size.")
	}
	return ColumnType{kind: typeVarChar, size: n}
}

// TypeNumeric is numeric(p, s). Scale above precision, or precision above
// 1000, panics.
func TypeNumeric(precision, scale uint) ColumnType {
	if precision > 1000 {
		panic("A numeric column cannot have a precision above 1000.")
	}
	if scale > precision {
		panic("A numeric column cannot have a scale above its precision.")
	}
	return ColumnType{kind: typeNumeric, precision: precision, scale: scale}
}

func TypeText() ColumnType        { return ColumnType{kind: typeText} }
func TypeBytea() ColumnType       { return ColumnType{kind: typeBytea} }
func TypeSmallInt() ColumnType    { return ColumnType{kind: typeSmallInt} }
func TypeInt() ColumnType         { return ColumnType{kind: typeInt} }
func TypeBigInt() ColumnType      { return ColumnType{kind: typeBigInt} }
func TypeFloat() ColumnType       { return ColumnType{kind: typeFloat} }
func TypeDouble() ColumnType      { return ColumnType{kind: typeDouble} }
func TypeSmallSerial() ColumnType { return ColumnType{kind: typeSmallSerial} }
func TypeSerial() ColumnType      { return ColumnType{kind: typeSerial} }
func TypeBigSerial() ColumnType   { return ColumnType{kind: typeBigSerial} }
func TypeInt4Range() ColumnType   { return ColumnType{kind: typeInt4Range} }
func TypeInt8Range() ColumnType   { return ColumnType{kind: typeInt8Range} }
func TypeNumRange() ColumnType    { return ColumnType{kind: typeNumRange} }
func TypeTsRange() ColumnType     { return ColumnType{kind: typeTsRange} }
func TypeTstzRange() ColumnType   { return ColumnType{kind: typeTstzRange} }
func TypeDateRange() ColumnType   { return ColumnType{kind: typeDateRange} }

// TypeDateTime is timestamp without time zone spelled out.
func TypeDateTime() ColumnType  { return ColumnType{kind: typeDateTime} }
func TypeTimestamp() ColumnType { return ColumnType{kind: typeTimestamp} }
func TypeTimestampWithTimeZone() ColumnType {
	return ColumnType{kind: typeTimestampWithTimeZone}
}
func TypeTime() ColumnType       { return ColumnType{kind: typeTime} }
func TypeDate() ColumnType       { return ColumnType{kind: typeDate} }
func TypeBoolean() ColumnType    { return ColumnType{kind: typeBoolean} }
func TypeJSON() ColumnType       { return ColumnType{kind: typeJSON} }
func TypeJSONBinary() ColumnType { return ColumnType{kind: typeJSONBinary} }
func TypeUUID() ColumnType       { return ColumnType{kind: typeUUID} }

// TypeArrayOf is an array of the element type.
func TypeArrayOf(elem ColumnType) ColumnType {
	return ColumnType{kind: typeArray, elem: &elem}
}

func writeColumnType(w SQLWriter, t ColumnType) {
	switch t.kind {
	case typeChar:
		w.WriteSQL("char(")
		w.WriteSQL(strconv.FormatUint(uint64(t.size), 10))
		w.WriteSQL(")")
	case typeVarChar:
		w.WriteSQL("varchar(")
		w.WriteSQL(strconv.FormatUint(uint64(t.size), 10))
		w.WriteSQL(")")
	case typeText:
		w.WriteSQL("text")
	case typeBytea:
		w.WriteSQL("bytea")
	case typeSmallInt:
		w.WriteSQL("smallint")
	case typeInt:
		w.WriteSQL("integer")
	case typeBigInt:
		w.WriteSQL("bigint")
	case typeFloat:
		w.WriteSQL("real")
	case typeDouble:
		w.WriteSQL("double precision")
	case typeNumeric:
		w.WriteSQL("numeric(")
		w.WriteSQL(strconv.FormatUint(uint64(t.precision), 10))
		w.WriteSQL(", ")
		w.WriteSQL(strconv.FormatUint(uint64(t.scale), 10))
		w.WriteSQL(")")
	case typeSmallSerial:
		w.WriteSQL("smallserial")
	case typeSerial:
		w.WriteSQL("serial")
	case typeBigSerial:
		w.WriteSQL("bigserial")
	case typeInt4Range:
		w.WriteSQL("int4range")
	case typeInt8Range:
		w.WriteSQL("int8range")
	case typeNumRange:
		w.WriteSQL("numrange")
	case typeTsRange:
		w.WriteSQL("tsrange")
	case typeTstzRange:
		w.WriteSQL("tstzrange")
	case typeDateRange:
		w.WriteSQL("daterange")
	case typeDateTime:
		w.WriteSQL("timestamp without time zone")
	case typeTimestamp:
		w.WriteSQL("timestamp")
	case typeTimestampWithTimeZone:
		w.WriteSQL("timestamp with time zone")
	case typeTime:
		w.WriteSQL("time")
	case typeDate:
		w.WriteSQL("date")
	case typeBoolean:
		w.WriteSQL("bool")
	case typeJSON:
		w.WriteSQL("json")
	case typeJSONBinary:
		w.WriteSQL("jsonb")
	case typeUUID:
		w.WriteSQL("uuid")
	case typeArray:
		writeColumnType(w, *t.elem)
		w.WriteSQL("[]")
	}
}

type generatedKind int

const (
	generatedStored generatedKind = iota
	generatedVirtual
)

type generatedColumn struct {
	expr Expr
	kind generatedKind
}

type columnSpec struct {
	nullable   *bool
	def        *Expr
	generated  *generatedColumn
	unique     bool
	primaryKey bool
}

// ColumnDef is one column of a CREATE TABLE or ALTER TABLE statement.
type ColumnDef struct {
	name Iden
	ty   *ColumnType
	spec columnSpec
}

// NewColumn starts a column definition with the given name.
func NewColumn(name string) *ColumnDef {
	return &ColumnDef{name: NewIden(name)}
}

// Type sets the column data type.
func (c *ColumnDef) Type(t ColumnType) *ColumnDef {
	c.ty = &t
	return c
}

func (c *ColumnDef) Char(n uint) *ColumnDef    { return c.Type(TypeChar(n)) }
func (c *ColumnDef) VarChar(n uint) *ColumnDef { return c.Type(TypeVarChar(n)) }
func (c *ColumnDef) Text() *ColumnDef          { return c.Type(TypeText()) }
func (c *ColumnDef) Bytea() *ColumnDef         { return c.Type(TypeBytea()) }
func (c *ColumnDef) SmallInt() *ColumnDef      { return c.Type(TypeSmallInt()) }
func (c *ColumnDef) Int() *ColumnDef           { return c.Type(TypeInt()) }
func (c *ColumnDef) BigInt() *ColumnDef        { return c.Type(TypeBigInt()) }
func (c *ColumnDef) Float() *ColumnDef         { return c.Type(TypeFloat()) }
func (c *ColumnDef) Double() *ColumnDef        { return c.Type(TypeDouble()) }
func (c *ColumnDef) Numeric(p, s uint) *ColumnDef {
	return c.Type(TypeNumeric(p, s))
}
func (c *ColumnDef) SmallSerial() *ColumnDef { return c.Type(TypeSmallSerial()) }
func (c *ColumnDef) Serial() *ColumnDef      { return c.Type(TypeSerial()) }
func (c *ColumnDef) BigSerial() *ColumnDef   { return c.Type(TypeBigSerial()) }
func (c *ColumnDef) Int4Range() *ColumnDef   { return c.Type(TypeInt4Range()) }
func (c *ColumnDef) Int8Range() *ColumnDef   { return c.Type(TypeInt8Range()) }
func (c *ColumnDef) NumRange() *ColumnDef    { return c.Type(TypeNumRange()) }
func (c *ColumnDef) TsRange() *ColumnDef     { return c.Type(TypeTsRange()) }
func (c *ColumnDef) TstzRange() *ColumnDef   { return c.Type(TypeTstzRange()) }
func (c *ColumnDef) DateRange() *ColumnDef   { return c.Type(TypeDateRange()) }
func (c *ColumnDef) DateTime() *ColumnDef    { return c.Type(TypeDateTime()) }
func (c *ColumnDef) Timestamp() *ColumnDef   { return c.Type(TypeTimestamp()) }
func (c *ColumnDef) TimestampWithTimeZone() *ColumnDef {
	return c.Type(TypeTimestampWithTimeZone())
}
func (c *ColumnDef) Time() *ColumnDef    { return c.Type(TypeTime()) }
func (c *ColumnDef) Date() *ColumnDef    { return c.Type(TypeDate()) }
func (c *ColumnDef) Boolean() *ColumnDef { return c.Type(TypeBoolean()) }
func (c *ColumnDef) JSON() *ColumnDef    { return c.Type(TypeJSON()) }
func (c *ColumnDef) JSONBinary() *ColumnDef {
	return c.Type(TypeJSONBinary())
}
func (c *ColumnDef) UUID() *ColumnDef { return c.Type(TypeUUID()) }
func (c *ColumnDef) ArrayOf(elem ColumnType) *ColumnDef {
	return c.Type(TypeArrayOf(elem))
}

func (c *ColumnDef) Null() *ColumnDef {
	on := true
	c.spec.nullable = &on
	return c
}

func (c *ColumnDef) NotNull() *ColumnDef {
	off := false
	c.spec.nullable = &off
	return c
}

// Default sets the column default. A column cannot be both generated and
// defaulted; that combination panics in either order.
func (c *ColumnDef) Default(v any) *ColumnDef {
	if c.spec.generated != nil {
		panic("A generated column cannot have a default value.")
	}
	e := exprOf(v)
	c.spec.def = &e
	return c
}

// GeneratedAsStored makes the column GENERATED ALWAYS AS (...) STORED.
func (c *ColumnDef) GeneratedAsStored(e Expr) *ColumnDef {
	return c.generated(e, generatedStored)
}

// GeneratedAsVirtual makes the column GENERATED ALWAYS AS (...) VIRTUAL.
// Before PostgreSQL 18, STORED is the only supported kind.
func (c *ColumnDef) GeneratedAsVirtual(e Expr) *ColumnDef {
	return c.generated(e, generatedVirtual)
}

func (c *ColumnDef) generated(e Expr, kind generatedKind) *ColumnDef {
	if c.spec.def != nil {
		panic("A generated column cannot have a default value.")
	}
	c.spec.generated = &generatedColumn{expr: e, kind: kind}
	return c
}

func (c *ColumnDef) Unique() *ColumnDef {
	c.spec.unique = true
	return c
}

func (c *ColumnDef) PrimaryKey() *ColumnDef {
	c.spec.primaryKey = true
	return c
}

func writeColumnSpec(w SQLWriter, spec columnSpec) {
	if spec.nullable != nil {
		if *spec.nullable {
			w.WriteSQL(" NULL")
		} else {
			w.WriteSQL(" NOT NULL")
		}
	}
	if spec.def != nil {
		w.WriteSQL(" DEFAULT ")
		switch spec.def.kind {
		case exprValue, exprKeyword:
			writeExpr(w, *spec.def)
		default:
			w.WriteSQL("(")
			writeExpr(w, *spec.def)
			w.WriteSQL(")")
		}
	}
	if spec.generated != nil {
		w.WriteSQL(" GENERATED ALWAYS AS (")
		writeExpr(w, spec.generated.expr)
		w.WriteSQL(")")
		if spec.generated.kind == generatedVirtual {
			w.WriteSQL(" VIRTUAL")
		} else {
			w.WriteSQL(" STORED")
		}
	}
	if spec.primaryKey {
		w.WriteSQL(" PRIMARY KEY")
	}
	if spec.unique {
		w.WriteSQL(" UNIQUE")
	}
}

func writeColumnDef(w SQLWriter, c *ColumnDef) {
	writeIden(w, c.name)
	if c.ty != nil {
		w.WriteSQL(" ")
		writeColumnType(w, *c.ty)
	}
	writeColumnSpec(w, c.spec)
}
