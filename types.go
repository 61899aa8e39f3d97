package pqb

import "strings"

// Iden is a SQL identifier. The safe flag is computed once at construction:
// a nonempty name starting with a letter or underscore and containing only
// letters, digits and underscores renders on the fast path, everything else
// goes through quote doubling.
type Iden struct {
	name string
	safe bool
}

// NewIden wraps a raw identifier name.
func NewIden(name string) Iden {
	return Iden{name: name, safe: isSafeIden(name)}
}

// Name returns the unquoted identifier text.
func (i Iden) Name() string { return i.name }

// Safe reports whether the identifier renders without quote doubling.
func (i Iden) Safe() bool { return i.safe }

func isSafeIden(name string) bool {
	if name == "" {
		return false
	}
	for pos, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if pos == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func writeIden(w SQLWriter, i Iden) {
	w.WriteSQL(`"`)
	if i.safe {
		w.WriteSQL(i.name)
	} else {
		w.WriteSQL(strings.ReplaceAll(i.name, `"`, `""`))
	}
	w.WriteSQL(`"`)
}

// DatabaseName names a database.
type DatabaseName struct {
	Name Iden
}

// SchemaName names a schema, optionally database-qualified.
type SchemaName struct {
	Database *DatabaseName
	Name     Iden
}

// TableName names a table, optionally schema-qualified.
type TableName struct {
	Schema *SchemaName
	Name   Iden
}

// ColumnName names a column, optionally table-qualified.
type ColumnName struct {
	Table *TableName
	Name  Iden
}

// Database builds a DatabaseName from a raw name.
func Database(name string) DatabaseName {
	return DatabaseName{Name: NewIden(name)}
}

// Schema builds a SchemaName from 1 part (schema) or 2 parts
// (database, schema).
func Schema(parts ...string) SchemaName {
	switch len(parts) {
	case 1:
		return SchemaName{Name: NewIden(parts[0])}
	case 2:
		db := Database(parts[0])
		return SchemaName{Database: &db, Name: NewIden(parts[1])}
	default:
		panic("pqb: Schema takes 1 or 2 name parts")
	}
}

// Table builds a TableName from 1 part (table), 2 parts (schema, table) or
// 3 parts (database, schema, table).
func Table(parts ...string) TableName {
	switch len(parts) {
	case 1:
		return TableName{Name: NewIden(parts[0])}
	case 2, 3:
		sch := Schema(parts[:len(parts)-1]...)
		return TableName{Schema: &sch, Name: NewIden(parts[len(parts)-1])}
	default:
		panic("pqb: Table takes 1 to 3 name parts")
	}
}

// Column builds a ColumnName from 1 part (column) up to 4 parts
// (database, schema, table, column).
func Column(parts ...string) ColumnName {
	switch len(parts) {
	case 1:
		return ColumnName{Name: NewIden(parts[0])}
	case 2, 3, 4:
		tbl := Table(parts[:len(parts)-1]...)
		return ColumnName{Table: &tbl, Name: NewIden(parts[len(parts)-1])}
	default:
		panic("pqb: Column takes 1 to 4 name parts")
	}
}

func writeSchemaName(w SQLWriter, s SchemaName) {
	if s.Database != nil {
		writeIden(w, s.Database.Name)
		w.WriteSQL(".")
	}
	writeIden(w, s.Name)
}

func writeTableName(w SQLWriter, t TableName) {
	if t.Schema != nil {
		writeSchemaName(w, *t.Schema)
		w.WriteSQL(".")
	}
	writeIden(w, t.Name)
}

func writeColumnName(w SQLWriter, c ColumnName) {
	if c.Table != nil {
		writeTableName(w, *c.Table)
		w.WriteSQL(".")
	}
	writeIden(w, c.Name)
}

// ColumnRef is either a column name or a possibly table-qualified asterisk.
type ColumnRef struct {
	name     ColumnName
	table    *TableName
	asterisk bool
}

// ColRef wraps a ColumnName.
func ColRef(name ColumnName) ColumnRef {
	return ColumnRef{name: name}
}

// AsteriskRef is the bare `*` projection.
func AsteriskRef() ColumnRef {
	return ColumnRef{asterisk: true}
}

// AsteriskRefOf is a table-qualified `"t".*` projection.
func AsteriskRefOf(table TableName) ColumnRef {
	return ColumnRef{asterisk: true, table: &table}
}

func writeColumnRef(w SQLWriter, c ColumnRef) {
	if c.asterisk {
		if c.table != nil {
			writeTableName(w, *c.table)
			w.WriteSQL(".")
		}
		w.WriteSQL("*")
		return
	}
	writeColumnName(w, c.name)
}

// TableRef is a FROM-position item: a table with an optional alias, or a
// subquery with a mandatory alias.
type TableRef struct {
	table    TableName
	sub      *Select
	alias    Iden
	hasAlias bool
}

// TableRefOf wraps a TableName without an alias.
func TableRefOf(table TableName) TableRef {
	return TableRef{table: table}
}

// SubqueryRef wraps a subquery with its alias.
func SubqueryRef(sub *Select, alias string) TableRef {
	return TableRef{sub: sub, alias: NewIden(alias), hasAlias: true}
}

// As returns a copy of the reference carrying the alias.
func (t TableRef) As(alias string) TableRef {
	t.alias = NewIden(alias)
	t.hasAlias = true
	return t
}

func writeTableRef(w SQLWriter, t TableRef) {
	if t.sub != nil {
		w.WriteSQL("(")
		writeSelect(w, t.sub)
		w.WriteSQL(") AS ")
		writeIden(w, t.alias)
		return
	}
	writeTableName(w, t.table)
	if t.hasAlias {
		w.WriteSQL(" AS ")
		writeIden(w, t.alias)
	}
}

// JoinType selects the join keyword.
type JoinType int

const (
	LeftJoin JoinType = iota
	InnerJoin
)

func (j JoinType) keyword() string {
	if j == InnerJoin {
		return " INNER JOIN "
	}
	return " LEFT JOIN "
}

// DropBehavior is the trailing CASCADE / RESTRICT choice of DROP statements.
type DropBehavior int

const (
	DropDefault DropBehavior = iota
	DropCascade
	DropRestrict
)

func writeDropBehavior(w SQLWriter, b DropBehavior) {
	switch b {
	case DropCascade:
		w.WriteSQL(" CASCADE")
	case DropRestrict:
		w.WriteSQL(" RESTRICT")
	}
}
