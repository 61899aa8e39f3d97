package pqb

// With is a WITH clause holding one or more common table expressions.
type With struct {
	ctes []CTE
}

func NewWith() *With { return &With{} }

// CTE appends a common table expression.
func (w *With) CTE(cte CTE) *With {
	w.ctes = append(w.ctes, cte)
	return w
}

type cteBody int

const (
	cteValues cteBody = iota
	cteSelect
)

// CTE is one common table expression: a name, optional column list and a
// SELECT or VALUES body. VALUES rows always render inline, never as
// placeholders.
type CTE struct {
	name         Iden
	columns      []Iden
	body         cteBody
	sel          *Select
	rows         [][]Value
	materialized *bool
}

func NewCTE(name string) CTE {
	return CTE{name: NewIden(name)}
}

// Columns names the CTE table definition columns.
func (c CTE) Columns(names ...string) CTE {
	for _, n := range names {
		c.columns = append(c.columns, NewIden(n))
	}
	return c
}

// Select sets a SELECT body.
func (c CTE) Select(sel *Select) CTE {
	c.body = cteSelect
	c.sel = sel
	return c
}

// Values sets a VALUES body.
func (c CTE) Values(rows ...[]Value) CTE {
	c.body = cteValues
	c.rows = rows
	return c
}

// Materialized forces MATERIALIZED or NOT MATERIALIZED.
func (c CTE) Materialized(on bool) CTE {
	c.materialized = &on
	return c
}

func writeWith(w SQLWriter, with *With) {
	w.WriteSQL("WITH ")
	for i, cte := range with.ctes {
		if i > 0 {
			w.WriteSQL(", ")
		}
		writeIden(w, cte.name)
		if len(cte.columns) == 0 {
			w.WriteSQL(" ")
		} else {
			w.WriteSQL(" (")
			for j, col := range cte.columns {
				if j > 0 {
					w.WriteSQL(", ")
				}
				writeIden(w, col)
			}
			w.WriteSQL(") ")
		}
		switch {
		case cte.materialized == nil:
			w.WriteSQL(" AS ")
		case *cte.materialized:
			w.WriteSQL(" AS MATERIALIZED ")
		default:
			w.WriteSQL(" AS NOT MATERIALIZED ")
		}
		if cte.body == cteSelect {
			w.WriteSQL("(")
			writeSelect(w, cte.sel)
			w.WriteSQL(")")
			continue
		}
		w.WriteSQL("VALUES ")
		for j, row := range cte.rows {
			if j > 0 {
				w.WriteSQL(", ")
			}
			w.WriteSQL("(")
			for k, val := range row {
				if k > 0 {
					w.WriteSQL(", ")
				}
				writeLiteral(w, val)
			}
			w.WriteSQL(")")
		}
	}
}
