package pqb

type indexOption struct {
	name Iden
	expr Expr
}

// CreateIndex builds a CREATE INDEX statement, and doubles as the embedded
// PRIMARY KEY / UNIQUE index definition inside CREATE TABLE.
type CreateIndex struct {
	name         *Iden
	table        *TableRef
	columns      []Iden
	include      []Iden
	options      []indexOption
	conds        []Expr
	method       string
	primary      bool
	unique       bool
	ifNotExists  bool
	concurrently bool
}

func NewCreateIndex() *CreateIndex { return &CreateIndex{} }

// Name names the index; unnamed indexes let the server pick.
func (s *CreateIndex) Name(name string) *CreateIndex {
	n := NewIden(name)
	s.name = &n
	return s
}

// Table sets the table to index from name parts.
func (s *CreateIndex) Table(parts ...string) *CreateIndex {
	ref := TableRefOf(Table(parts...))
	s.table = &ref
	return s
}

// Column adds a key column.
func (s *CreateIndex) Column(name string) *CreateIndex {
	s.columns = append(s.columns, NewIden(name))
	return s
}

// Columns adds key columns.
func (s *CreateIndex) Columns(names ...string) *CreateIndex {
	for _, n := range names {
		s.columns = append(s.columns, NewIden(n))
	}
	return s
}

// IncludeColumns adds non-key INCLUDE columns.
func (s *CreateIndex) IncludeColumns(names ...string) *CreateIndex {
	for _, n := range names {
		s.include = append(s.include, NewIden(n))
	}
	return s
}

// Using selects a custom access method.
func (s *CreateIndex) Using(method string) *CreateIndex {
	s.method = method
	return s
}

func (s *CreateIndex) Gist() *CreateIndex { return s.Using("gist") }
func (s *CreateIndex) Gin() *CreateIndex  { return s.Using("gin") }
func (s *CreateIndex) Brin() *CreateIndex { return s.Using("brin") }
func (s *CreateIndex) Hash() *CreateIndex { return s.Using("hash") }

// WithOption adds one storage parameter to the WITH list.
func (s *CreateIndex) WithOption(name string, v any) *CreateIndex {
	s.options = append(s.options, indexOption{name: NewIden(name), expr: exprOf(v)})
	return s
}

// Where restricts the index to matching rows; conditions fold under AND.
func (s *CreateIndex) Where(e Expr) *CreateIndex {
	s.conds = append(s.conds, e)
	return s
}

func (s *CreateIndex) Unique() *CreateIndex {
	s.unique = true
	return s
}

func (s *CreateIndex) IfNotExists() *CreateIndex {
	s.ifNotExists = true
	return s
}

func (s *CreateIndex) Concurrently() *CreateIndex {
	s.concurrently = true
	return s
}

func writeCreateIndex(w SQLWriter, s *CreateIndex) {
	w.WriteSQL("CREATE ")
	if s.unique {
		w.WriteSQL("UNIQUE ")
	}
	w.WriteSQL("INDEX ")
	if s.concurrently {
		w.WriteSQL("CONCURRENTLY ")
	}
	if s.ifNotExists {
		w.WriteSQL("IF NOT EXISTS ")
	}
	if s.name != nil {
		writeIden(w, *s.name)
		w.WriteSQL(" ")
	}
	w.WriteSQL("ON ")
	if s.table != nil {
		writeTableRef(w, *s.table)
	}
	if s.method != "" {
		w.WriteSQL(" USING ")
		w.WriteSQL(s.method)
	}
	w.WriteSQL(" ")
	writeIndexColumns(w, s.columns)
	if len(s.include) > 0 {
		w.WriteSQL(" INCLUDE ")
		writeIndexColumns(w, s.include)
	}
	if len(s.options) > 0 {
		w.WriteSQL(" WITH (")
		for i, opt := range s.options {
			if i > 0 {
				w.WriteSQL(", ")
			}
			writeIden(w, opt.name)
			w.WriteSQL(" = ")
			writeExpr(w, opt.expr)
		}
		w.WriteSQL(")")
	}
	if len(s.conds) > 0 {
		w.WriteSQL(" WHERE ")
		writeExpr(w, exprAnd(s.conds))
	}
}

// writeTableIndex is the embedded form used inside CREATE TABLE.
func writeTableIndex(w SQLWriter, s *CreateIndex) {
	if s.primary {
		w.WriteSQL("PRIMARY KEY ")
	}
	if s.unique {
		w.WriteSQL("UNIQUE ")
	}
	writeIndexColumns(w, s.columns)
}

func writeIndexColumns(w SQLWriter, columns []Iden) {
	w.WriteSQL("(")
	for i, col := range columns {
		if i > 0 {
			w.WriteSQL(", ")
		}
		writeIden(w, col)
	}
	w.WriteSQL(")")
}

func (s *CreateIndex) ToSQL() string {
	w := NewInlineWriter()
	writeCreateIndex(w, s)
	return w.String()
}

func (s *CreateIndex) ToValues() (string, []Value) {
	w := NewValuesWriter()
	writeCreateIndex(w, s)
	return w.Parts()
}

// DropIndex builds a DROP INDEX statement.
type DropIndex struct {
	names        []TableName
	ifExists     bool
	concurrently bool
	behavior     DropBehavior
}

func NewDropIndex() *DropIndex { return &DropIndex{} }

// Index adds an index name, optionally schema-qualified.
func (s *DropIndex) Index(parts ...string) *DropIndex {
	s.names = append(s.names, Table(parts...))
	return s
}

func (s *DropIndex) IfExists() *DropIndex {
	s.ifExists = true
	return s
}

func (s *DropIndex) Concurrently() *DropIndex {
	s.concurrently = true
	return s
}

func (s *DropIndex) Cascade() *DropIndex {
	s.behavior = DropCascade
	return s
}

func (s *DropIndex) Restrict() *DropIndex {
	s.behavior = DropRestrict
	return s
}

func writeDropIndex(w SQLWriter, s *DropIndex) {
	w.WriteSQL("DROP INDEX ")
	if s.concurrently {
		w.WriteSQL("CONCURRENTLY ")
	}
	if s.ifExists {
		w.WriteSQL("IF EXISTS ")
	}
	for i, n := range s.names {
		if i > 0 {
			w.WriteSQL(", ")
		}
		writeTableName(w, n)
	}
	writeDropBehavior(w, s.behavior)
}

func (s *DropIndex) ToSQL() string {
	w := NewInlineWriter()
	writeDropIndex(w, s)
	return w.String()
}

func (s *DropIndex) ToValues() (string, []Value) {
	w := NewValuesWriter()
	writeDropIndex(w, s)
	return w.Parts()
}
