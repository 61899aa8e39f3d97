package pqb

// Returning is the RETURNING clause: all columns or an expression list.
type Returning struct {
	all   bool
	exprs []Expr
}

// ReturningAll is RETURNING *.
func ReturningAll() Returning {
	return Returning{all: true}
}

// ReturningColumns returns the named columns.
func ReturningColumns(names ...string) Returning {
	exprs := make([]Expr, len(names))
	for i, n := range names {
		exprs[i] = Col(n)
	}
	return Returning{exprs: exprs}
}

// ReturningExprs returns arbitrary expressions.
func ReturningExprs(exprs ...Expr) Returning {
	return Returning{exprs: exprs}
}

func writeReturning(w SQLWriter, r Returning) {
	w.WriteSQL(" RETURNING ")
	if r.all {
		w.WriteSQL("*")
		return
	}
	for i, e := range r.exprs {
		if i > 0 {
			w.WriteSQL(", ")
		}
		writeExpr(w, e)
	}
}
