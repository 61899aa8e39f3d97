package pqb

// Delete builds a DELETE statement.
type Delete struct {
	with      *With
	table     *TableRef
	conds     []Expr
	returning *Returning
}

func NewDelete() *Delete { return &Delete{} }

// With prepends a WITH clause.
func (s *Delete) With(w *With) *Delete {
	s.with = w
	return s
}

// FromTable sets the target table from name parts.
func (s *Delete) FromTable(parts ...string) *Delete {
	ref := TableRefOf(Table(parts...))
	s.table = &ref
	return s
}

// FromTableRef sets the target table from a prebuilt reference.
func (s *Delete) FromTableRef(ref TableRef) *Delete {
	s.table = &ref
	return s
}

// AndWhere adds a condition; all conditions fold under AND.
func (s *Delete) AndWhere(e Expr) *Delete {
	s.conds = append(s.conds, e)
	return s
}

// Returning sets the RETURNING clause.
func (s *Delete) Returning(r Returning) *Delete {
	s.returning = &r
	return s
}

func writeDelete(w SQLWriter, s *Delete) {
	if s.with != nil {
		writeWith(w, s.with)
		w.WriteSQL(" ")
	}
	w.WriteSQL("DELETE ")
	if s.table != nil {
		w.WriteSQL("FROM ")
		writeTableRef(w, *s.table)
	}
	if len(s.conds) > 0 {
		w.WriteSQL(" WHERE ")
		writeExpr(w, exprAnd(s.conds))
	}
	if s.returning != nil {
		writeReturning(w, *s.returning)
	}
}

func (s *Delete) ToSQL() string {
	w := NewInlineWriter()
	writeDelete(w, s)
	return w.String()
}

func (s *Delete) ToValues() (string, []Value) {
	w := NewValuesWriter()
	writeDelete(w, s)
	return w.Parts()
}

func (s *Delete) Fingerprint() uint64 { return fnvString(s.ToSQL()) }

func (s *Delete) explainable() {}
