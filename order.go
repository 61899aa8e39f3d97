package pqb

type nullsPlacement int

const (
	nullsUnset nullsPlacement = iota
	nullsFirst
	nullsLast
)

// Order is one ORDER BY item.
type Order struct {
	expr  Expr
	desc  bool
	nulls nullsPlacement
}

// OrderColumn orders by a column, ascending by default.
func OrderColumn(parts ...string) Order {
	return Order{expr: Col(parts...)}
}

// OrderExpr orders by an arbitrary expression, ascending by default.
func OrderExpr(e Expr) Order {
	return Order{expr: e}
}

func (o Order) Asc() Order {
	o.desc = false
	return o
}

func (o Order) Desc() Order {
	o.desc = true
	return o
}

func (o Order) NullsFirst() Order {
	o.nulls = nullsFirst
	return o
}

func (o Order) NullsLast() Order {
	o.nulls = nullsLast
	return o
}

func writeOrder(w SQLWriter, o Order) {
	writeExpr(w, o.expr)
	if o.desc {
		w.WriteSQL(" DESC")
	} else {
		w.WriteSQL(" ASC")
	}
	switch o.nulls {
	case nullsFirst:
		w.WriteSQL(" NULLS FIRST")
	case nullsLast:
		w.WriteSQL(" NULLS LAST")
	}
}
