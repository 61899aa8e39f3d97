package pqb

import "fmt"

type insertSource int

const (
	insertNoSource insertSource = iota
	insertValues
	insertSelect
)

// Insert builds an INSERT statement.
type Insert struct {
	table      *TableRef
	columns    []Iden
	source     insertSource
	rows       [][]Expr
	sel        *Select
	defaults   uint
	onConflict *OnConflict
	returning  *Returning
}

func NewInsert() *Insert { return &Insert{} }

// IntoTable sets the target table from name parts.
func (s *Insert) IntoTable(parts ...string) *Insert {
	ref := TableRefOf(Table(parts...))
	s.table = &ref
	return s
}

// IntoTableRef sets the target table from a prebuilt reference.
func (s *Insert) IntoTableRef(ref TableRef) *Insert {
	s.table = &ref
	return s
}

// Columns declares the insert column list.
func (s *Insert) Columns(names ...string) *Insert {
	for _, n := range names {
		s.columns = append(s.columns, NewIden(n))
	}
	return s
}

// Values appends one row. The row length must match the declared columns;
// a mismatch is a programmer error and panics.
func (s *Insert) Values(exprs ...Expr) *Insert {
	if len(exprs) != len(s.columns) {
		panic(fmt.Sprintf("pqb: insert row has %d values for %d columns", len(exprs), len(s.columns)))
	}
	if len(exprs) > 0 {
		if s.source != insertValues {
			s.source = insertValues
			s.rows = nil
		}
		s.rows = append(s.rows, exprs)
	}
	return s
}

// FromSelect sources rows from a SELECT. Its projection count must match the
// declared columns; a mismatch panics.
func (s *Insert) FromSelect(sel *Select) *Insert {
	if sel.columnsLen() != len(s.columns) {
		panic(fmt.Sprintf("pqb: insert select has %d columns for %d declared", sel.columnsLen(), len(s.columns)))
	}
	s.source = insertSelect
	s.sel = sel
	return s
}

// OrDefaultValues inserts n all-default rows when no columns and no source
// were supplied.
func (s *Insert) OrDefaultValues(n uint) *Insert {
	s.defaults = n
	return s
}

// OnConflict attaches the upsert clause.
func (s *Insert) OnConflict(oc *OnConflict) *Insert {
	s.onConflict = oc
	return s
}

// Returning sets the RETURNING clause.
func (s *Insert) Returning(r Returning) *Insert {
	s.returning = &r
	return s
}

func writeInsert(w SQLWriter, s *Insert) {
	w.WriteSQL("INSERT ")
	if s.table != nil {
		w.WriteSQL("INTO ")
		writeTableRef(w, *s.table)
	}

	if s.defaults != 0 && len(s.columns) == 0 && s.source == insertNoSource {
		w.WriteSQL(" VALUES ")
		for i := uint(0); i < s.defaults; i++ {
			if i > 0 {
				w.WriteSQL(", ")
			}
			w.WriteSQL("(DEFAULT)")
		}
		return
	}

	w.WriteSQL(" (")
	for i, col := range s.columns {
		if i > 0 {
			w.WriteSQL(", ")
		}
		writeIden(w, col)
	}
	w.WriteSQL(")")

	switch s.source {
	case insertValues:
		w.WriteSQL(" VALUES ")
		for i, row := range s.rows {
			if i > 0 {
				w.WriteSQL(", ")
			}
			w.WriteSQL("(")
			for j, e := range row {
				if j > 0 {
					w.WriteSQL(", ")
				}
				writeExpr(w, e)
			}
			w.WriteSQL(")")
		}
	case insertSelect:
		w.WriteSQL(" ")
		writeSelect(w, s.sel)
	}

	if s.onConflict != nil {
		writeOnConflict(w, s.onConflict)
	}
	if s.returning != nil {
		writeReturning(w, *s.returning)
	}
}

func (s *Insert) ToSQL() string {
	w := NewInlineWriter()
	writeInsert(w, s)
	return w.String()
}

func (s *Insert) ToValues() (string, []Value) {
	w := NewValuesWriter()
	writeInsert(w, s)
	return w.Parts()
}

func (s *Insert) Fingerprint() uint64 { return fnvString(s.ToSQL()) }

func (s *Insert) explainable() {}
