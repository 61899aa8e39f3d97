package pqb

type alterKind int

const (
	alterAddColumn alterKind = iota
	alterModifyColumn
	alterRenameColumn
	alterDropColumn
)

type alterOption struct {
	kind        alterKind
	column      *ColumnDef
	ifNotExists bool
	ifExists    bool
	from        Iden
	to          Iden
	drop        Iden
}

// AlterTable builds an ALTER TABLE statement with one or more alterations.
type AlterTable struct {
	table   *TableRef
	options []alterOption
}

func NewAlterTable() *AlterTable { return &AlterTable{} }

// Table sets the table name from name parts.
func (s *AlterTable) Table(parts ...string) *AlterTable {
	ref := TableRefOf(Table(parts...))
	s.table = &ref
	return s
}

// AddColumn adds a column.
func (s *AlterTable) AddColumn(def *ColumnDef) *AlterTable {
	s.options = append(s.options, alterOption{kind: alterAddColumn, column: def})
	return s
}

// AddColumnIfNotExists adds a column guarded by IF NOT EXISTS.
func (s *AlterTable) AddColumnIfNotExists(def *ColumnDef) *AlterTable {
	s.options = append(s.options, alterOption{kind: alterAddColumn, column: def, ifNotExists: true})
	return s
}

// ModifyColumn rewrites column attributes. Each attribute set on the
// definition becomes its own ALTER COLUMN sub-option.
func (s *AlterTable) ModifyColumn(def *ColumnDef) *AlterTable {
	s.options = append(s.options, alterOption{kind: alterModifyColumn, column: def})
	return s
}

// RenameColumn renames a column.
func (s *AlterTable) RenameColumn(from, to string) *AlterTable {
	s.options = append(s.options, alterOption{kind: alterRenameColumn, from: NewIden(from), to: NewIden(to)})
	return s
}

// DropColumn drops a column.
func (s *AlterTable) DropColumn(name string) *AlterTable {
	s.options = append(s.options, alterOption{kind: alterDropColumn, drop: NewIden(name)})
	return s
}

// DropColumnIfExists drops a column guarded by IF EXISTS.
func (s *AlterTable) DropColumnIfExists(name string) *AlterTable {
	s.options = append(s.options, alterOption{kind: alterDropColumn, drop: NewIden(name), ifExists: true})
	return s
}

func writeAlterTable(w SQLWriter, s *AlterTable) {
	w.WriteSQL("ALTER TABLE ")
	if s.table != nil {
		writeTableRef(w, *s.table)
		w.WriteSQL(" ")
	}
	for i, opt := range s.options {
		if i > 0 {
			w.WriteSQL(", ")
		}
		switch opt.kind {
		case alterAddColumn:
			w.WriteSQL("ADD COLUMN ")
			if opt.ifNotExists {
				w.WriteSQL("IF NOT EXISTS ")
			}
			writeColumnDef(w, opt.column)
		case alterModifyColumn:
			writeModifyColumn(w, opt.column)
		case alterRenameColumn:
			w.WriteSQL("RENAME COLUMN ")
			writeIden(w, opt.from)
			w.WriteSQL(" TO ")
			writeIden(w, opt.to)
		case alterDropColumn:
			w.WriteSQL("DROP COLUMN ")
			if opt.ifExists {
				w.WriteSQL("IF EXISTS ")
			}
			writeIden(w, opt.drop)
		}
	}
}

func writeModifyColumn(w SQLWriter, def *ColumnDef) {
	first := true
	next := func() {
		if first {
			first = false
		} else {
			w.WriteSQL(", ")
		}
	}
	if def.ty != nil {
		next()
		w.WriteSQL("ALTER COLUMN ")
		writeIden(w, def.name)
		w.WriteSQL(" TYPE ")
		writeColumnType(w, *def.ty)
	}
	if def.spec.nullable != nil {
		next()
		w.WriteSQL("ALTER COLUMN ")
		writeIden(w, def.name)
		if *def.spec.nullable {
			w.WriteSQL(" DROP NOT NULL")
		} else {
			w.WriteSQL(" SET NOT NULL")
		}
	}
	if def.spec.def != nil {
		next()
		w.WriteSQL("ALTER COLUMN ")
		writeIden(w, def.name)
		w.WriteSQL(" SET DEFAULT ")
		writeExpr(w, *def.spec.def)
	}
	if def.spec.unique {
		next()
		w.WriteSQL("ADD UNIQUE (")
		writeIden(w, def.name)
		w.WriteSQL(")")
	}
	if def.spec.primaryKey {
		next()
		w.WriteSQL("ADD PRIMARY KEY (")
		writeIden(w, def.name)
		w.WriteSQL(")")
	}
}

func (s *AlterTable) ToSQL() string {
	w := NewInlineWriter()
	writeAlterTable(w, s)
	return w.String()
}

func (s *AlterTable) ToValues() (string, []Value) {
	w := NewValuesWriter()
	writeAlterTable(w, s)
	return w.Parts()
}
