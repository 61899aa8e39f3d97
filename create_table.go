package pqb

// CreateTable builds a CREATE TABLE statement.
type CreateTable struct {
	table       *TableRef
	columns     []*ColumnDef
	indexes     []*CreateIndex
	ifNotExists bool
	temporary   bool
}

func NewCreateTable() *CreateTable { return &CreateTable{} }

func (s *CreateTable) IfNotExists() *CreateTable {
	s.ifNotExists = true
	return s
}

func (s *CreateTable) Temporary() *CreateTable {
	s.temporary = true
	return s
}

// Table sets the table name from name parts.
func (s *CreateTable) Table(parts ...string) *CreateTable {
	ref := TableRefOf(Table(parts...))
	s.table = &ref
	return s
}

// Column appends a column definition.
func (s *CreateTable) Column(def *ColumnDef) *CreateTable {
	s.columns = append(s.columns, def)
	return s
}

// PrimaryKey embeds a table-level PRIMARY KEY index.
func (s *CreateTable) PrimaryKey(idx *CreateIndex) *CreateTable {
	idx.primary = true
	s.indexes = append(s.indexes, idx)
	return s
}

func writeCreateTable(w SQLWriter, s *CreateTable) {
	w.WriteSQL("CREATE ")
	if s.temporary {
		w.WriteSQL("TEMPORARY ")
	}
	w.WriteSQL("TABLE ")
	if s.ifNotExists {
		w.WriteSQL("IF NOT EXISTS ")
	}
	if s.table != nil {
		writeTableRef(w, *s.table)
	}

	w.WriteSQL(" ( ")
	first := true
	for _, col := range s.columns {
		if first {
			first = false
		} else {
			w.WriteSQL(", ")
		}
		writeColumnDef(w, col)
	}
	for _, idx := range s.indexes {
		if first {
			first = false
		} else {
			w.WriteSQL(", ")
		}
		writeTableIndex(w, idx)
	}
	w.WriteSQL(" )")
}

func (s *CreateTable) ToSQL() string {
	w := NewInlineWriter()
	writeCreateTable(w, s)
	return w.String()
}

func (s *CreateTable) ToValues() (string, []Value) {
	w := NewValuesWriter()
	writeCreateTable(w, s)
	return w.Parts()
}
