package pqb

type updatePair struct {
	col  Iden
	expr Expr
}

// Update builds an UPDATE statement.
type Update struct {
	table     *TableRef
	values    []updatePair
	conds     []Expr
	returning *Returning
}

func NewUpdate() *Update { return &Update{} }

// Table sets the target table from name parts.
func (s *Update) Table(parts ...string) *Update {
	ref := TableRefOf(Table(parts...))
	s.table = &ref
	return s
}

// TableRef sets the target table from a prebuilt reference.
func (s *Update) TableRef(ref TableRef) *Update {
	s.table = &ref
	return s
}

// Value adds one SET pair; the value goes through the usual conversion.
func (s *Update) Value(col string, v any) *Update {
	s.values = append(s.values, updatePair{col: NewIden(col), expr: exprOf(v)})
	return s
}

// AndWhere adds a condition; all conditions fold under AND.
func (s *Update) AndWhere(e Expr) *Update {
	s.conds = append(s.conds, e)
	return s
}

// Returning sets the RETURNING clause.
func (s *Update) Returning(r Returning) *Update {
	s.returning = &r
	return s
}

func writeUpdate(w SQLWriter, s *Update) {
	w.WriteSQL("UPDATE ")
	if s.table != nil {
		writeTableRef(w, *s.table)
	}
	w.WriteSQL(" SET ")
	for i, p := range s.values {
		if i > 0 {
			w.WriteSQL(", ")
		}
		writeIden(w, p.col)
		w.WriteSQL(" = ")
		writeExpr(w, p.expr)
	}
	if len(s.conds) > 0 {
		w.WriteSQL(" WHERE ")
		writeExpr(w, exprAnd(s.conds))
	}
	if s.returning != nil {
		writeReturning(w, *s.returning)
	}
}

func (s *Update) ToSQL() string {
	w := NewInlineWriter()
	writeUpdate(w, s)
	return w.String()
}

func (s *Update) ToValues() (string, []Value) {
	w := NewValuesWriter()
	writeUpdate(w, s)
	return w.Parts()
}

func (s *Update) Fingerprint() uint64 { return fnvString(s.ToSQL()) }

func (s *Update) explainable() {}
