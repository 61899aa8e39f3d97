package pqb

import "hash/fnv"

type exprKind int

const (
	exprColumn exprKind = iota
	exprKeyword
	exprTuple
	exprValue
	exprUnary
	exprBinary
	exprFunction
	exprSubQuery
	exprCustom
)

// SubQueryOp is the prefix operator of a subquery expression.
type SubQueryOp int

const (
	SubQueryPlain SubQueryOp = iota
	SubQueryExists
	SubQueryAny
	SubQuerySome
	SubQueryAll
)

func (op SubQueryOp) text() string {
	switch op {
	case SubQueryExists:
		return "EXISTS"
	case SubQueryAny:
		return "ANY"
	case SubQuerySome:
		return "SOME"
	case SubQueryAll:
		return "ALL"
	}
	return ""
}

// Expr is a SQL expression tree node. Exprs are immutable values; every
// combinator returns a new node. Rendering walks the tree recursively, which
// is fine in practice because builder-level AND folds keep the left spine
// iterative and WHERE chains shallow on the right.
type Expr struct {
	kind  exprKind
	col   ColumnRef
	kw    Keyword
	val   Value
	items []Expr
	op    BinaryOp
	unop  UnaryOp
	lhs   *Expr
	rhs   *Expr
	name  string
	sub   *Select
	subOp SubQueryOp
}

// Col references a column by 1 to 4 name parts.
func Col(parts ...string) Expr {
	return Expr{kind: exprColumn, col: ColRef(Column(parts...))}
}

// ColumnExpr wraps an already-built column reference.
func ColumnExpr(ref ColumnRef) Expr {
	return Expr{kind: exprColumn, col: ref}
}

// Val wraps any supported native value as a literal expression.
func Val(v any) Expr {
	return Expr{kind: exprValue, val: ValueOf(v)}
}

// Asterisk is the bare `*` projection.
func Asterisk() Expr {
	return Expr{kind: exprColumn, col: AsteriskRef()}
}

// AsteriskOf is a table-qualified `"t".*` projection.
func AsteriskOf(parts ...string) Expr {
	return Expr{kind: exprColumn, col: AsteriskRefOf(Table(parts...))}
}

// Tuple is a parenthesized expression list.
func Tuple(items ...Expr) Expr {
	return Expr{kind: exprTuple, items: items}
}

// KeywordExpr places a bare keyword in expression position.
func KeywordExpr(k Keyword) Expr {
	return Expr{kind: exprKeyword, kw: k}
}

// Null is the NULL keyword.
func Null() Expr { return KeywordExpr(KeywordNull) }

// CurrentTimestamp is the CURRENT_TIMESTAMP keyword.
func CurrentTimestamp() Expr { return KeywordExpr(KeywordCurrentTimestamp) }

// Custom injects a raw SQL fragment verbatim.
//
// SECURITY: the fragment is emitted as-is with no quoting or escaping. Never
// build it from untrusted input; pass values through Val so they are escaped
// or bound as placeholders.
func Custom(sql string) Expr {
	return Expr{kind: exprCustom, name: sql}
}

// Function calls a function by verbatim name.
func Function(name string, args ...Expr) Expr {
	return Expr{kind: exprFunction, name: name, items: args}
}

// SubQuery places a SELECT in expression position, optionally under
// EXISTS/ANY/SOME/ALL.
func SubQuery(op SubQueryOp, sel *Select) Expr {
	return Expr{kind: exprSubQuery, sub: sel, subOp: op}
}

// Exists wraps a subquery under EXISTS.
func Exists(sel *Select) Expr { return SubQuery(SubQueryExists, sel) }

// AnyOf wraps a subquery under ANY.
func AnyOf(sel *Select) Expr { return SubQuery(SubQueryAny, sel) }

// SomeOf wraps a subquery under SOME.
func SomeOf(sel *Select) Expr { return SubQuery(SubQuerySome, sel) }

// AllOf wraps a subquery under ALL.
func AllOf(sel *Select) Expr { return SubQuery(SubQueryAll, sel) }

// exprOf converts combinator operands: Expr passes through, Value wraps,
// native scalars go through ValueOf.
func exprOf(v any) Expr {
	switch x := v.(type) {
	case Expr:
		return x
	case Value:
		return Expr{kind: exprValue, val: x}
	case ColumnName:
		return ColumnExpr(ColRef(x))
	default:
		return Val(v)
	}
}

// exprAnd folds conditions left-associated under AND.
func exprAnd(conds []Expr) Expr {
	out := conds[0]
	for _, c := range conds[1:] {
		out = out.And(c)
	}
	return out
}

func (e Expr) binary(op BinaryOp, rhs Expr) Expr {
	l, r := e, rhs
	return Expr{kind: exprBinary, op: op, lhs: &l, rhs: &r}
}

func (e Expr) And(v any) Expr { return e.binary(OpAnd, exprOf(v)) }
func (e Expr) Or(v any) Expr  { return e.binary(OpOr, exprOf(v)) }
func (e Expr) Eq(v any) Expr  { return e.binary(OpEq, exprOf(v)) }
func (e Expr) Ne(v any) Expr  { return e.binary(OpNe, exprOf(v)) }
func (e Expr) Lt(v any) Expr  { return e.binary(OpLt, exprOf(v)) }
func (e Expr) Lte(v any) Expr { return e.binary(OpLte, exprOf(v)) }
func (e Expr) Gt(v any) Expr  { return e.binary(OpGt, exprOf(v)) }
func (e Expr) Gte(v any) Expr { return e.binary(OpGte, exprOf(v)) }

func (e Expr) Like(v any) Expr    { return e.binary(OpLike, exprOf(v)) }
func (e Expr) NotLike(v any) Expr { return e.binary(OpNotLike, exprOf(v)) }

func (e Expr) Is(v any) Expr    { return e.binary(OpIs, exprOf(v)) }
func (e Expr) IsNot(v any) Expr { return e.binary(OpIsNot, exprOf(v)) }

func (e Expr) IsNull() Expr    { return e.binary(OpIs, Null()) }
func (e Expr) IsNotNull() Expr { return e.binary(OpIsNot, Null()) }

// Between renders `e BETWEEN lo AND hi`. The endpoint pair is held as a
// structural AND node that prints without parentheses.
func (e Expr) Between(lo, hi any) Expr {
	return e.binary(OpBetween, exprOf(lo).binary(OpAnd, exprOf(hi)))
}

func (e Expr) NotBetween(lo, hi any) Expr {
	return e.binary(OpNotBetween, exprOf(lo).binary(OpAnd, exprOf(hi)))
}

// In renders `e IN (vals)`. An empty list renders as the always-false
// comparison `1 = 2`.
func (e Expr) In(vals ...any) Expr {
	return e.binary(OpIn, tupleOf(vals))
}

// NotIn renders `e NOT IN (vals)`. An empty list renders as the always-true
// comparison `1 = 1`.
func (e Expr) NotIn(vals ...any) Expr {
	return e.binary(OpNotIn, tupleOf(vals))
}

// InSubquery renders `e IN (SELECT ...)`.
func (e Expr) InSubquery(sel *Select) Expr {
	return e.binary(OpIn, SubQuery(SubQueryPlain, sel))
}

// NotInSubquery renders `e NOT IN (SELECT ...)`.
func (e Expr) NotInSubquery(sel *Select) Expr {
	return e.binary(OpNotIn, SubQuery(SubQueryPlain, sel))
}

func tupleOf(vals []any) Expr {
	items := make([]Expr, len(vals))
	for i, v := range vals {
		items[i] = exprOf(v)
	}
	return Tuple(items...)
}

func (e Expr) Add(v any) Expr { return e.binary(OpAdd, exprOf(v)) }
func (e Expr) Sub(v any) Expr { return e.binary(OpSub, exprOf(v)) }
func (e Expr) Mul(v any) Expr { return e.binary(OpMul, exprOf(v)) }
func (e Expr) Div(v any) Expr { return e.binary(OpDiv, exprOf(v)) }
func (e Expr) Mod(v any) Expr { return e.binary(OpMod, exprOf(v)) }

func (e Expr) ShiftLeft(v any) Expr  { return e.binary(OpShiftLeft, exprOf(v)) }
func (e Expr) ShiftRight(v any) Expr { return e.binary(OpShiftRight, exprOf(v)) }

// Range and array operators.
func (e Expr) Contains(v any) Expr             { return e.binary(OpContains, exprOf(v)) }
func (e Expr) ContainedBy(v any) Expr          { return e.binary(OpContainedBy, exprOf(v)) }
func (e Expr) Overlaps(v any) Expr             { return e.binary(OpOverlaps, exprOf(v)) }
func (e Expr) StrictlyLeftOf(v any) Expr       { return e.binary(OpStrictlyLeftOf, exprOf(v)) }
func (e Expr) StrictlyRightOf(v any) Expr      { return e.binary(OpStrictlyRightOf, exprOf(v)) }
func (e Expr) DoesNotExtendRightOf(v any) Expr { return e.binary(OpDoesNotExtendRightOf, exprOf(v)) }
func (e Expr) DoesNotExtendLeftOf(v any) Expr  { return e.binary(OpDoesNotExtendLeftOf, exprOf(v)) }
func (e Expr) AdjacentTo(v any) Expr           { return e.binary(OpAdjacentTo, exprOf(v)) }

// Not negates the expression.
func (e Expr) Not() Expr {
	operand := e
	return Expr{kind: exprUnary, unop: OpNot, lhs: &operand}
}

// IfNull is COALESCE(e, alt).
func (e Expr) IfNull(alt any) Expr {
	return Function("COALESCE", e, exprOf(alt))
}

func (e Expr) Max() Expr   { return Function("MAX", e) }
func (e Expr) Min() Expr   { return Function("MIN", e) }
func (e Expr) Sum() Expr   { return Function("SUM", e) }
func (e Expr) Avg() Expr   { return Function("AVG", e) }
func (e Expr) Count() Expr { return Function("COUNT", e) }

func isAtomic(e Expr) bool {
	switch e.kind {
	case exprColumn, exprKeyword, exprTuple, exprValue, exprFunction, exprSubQuery:
		return true
	}
	return false
}

// childNeedsParens decides parenthesization under a binary parent: atomic
// children never, binary children only when not strictly higher class,
// everything else (unary, custom) always.
func childNeedsParens(child Expr, parent BinaryOp) bool {
	if isAtomic(child) {
		return false
	}
	if child.kind == exprBinary {
		return child.op.class() <= parent.class()
	}
	return true
}

func writeExprChild(w SQLWriter, child Expr, parent BinaryOp, leftmost bool) {
	paren := childNeedsParens(child, parent)
	if paren && leftmost && child.kind == exprBinary && child.op == parent && parent.leftAssociative() {
		paren = false
	}
	if paren {
		w.WriteSQL("(")
	}
	writeExpr(w, child)
	if paren {
		w.WriteSQL(")")
	}
}

func writeBinaryExpr(w SQLWriter, lhs Expr, op BinaryOp, rhs Expr) {
	if (op == OpIn || op == OpNotIn) && rhs.kind == exprTuple && len(rhs.items) == 0 {
		if op == OpIn {
			w.WriteSQL("1 = 2")
		} else {
			w.WriteSQL("1 = 1")
		}
		return
	}
	writeExprChild(w, lhs, op, true)
	w.WriteSQL(" ")
	w.WriteSQL(op.text())
	w.WriteSQL(" ")
	if (op == OpBetween || op == OpNotBetween) && rhs.kind == exprBinary && rhs.op == OpAnd {
		writeExprChild(w, *rhs.lhs, OpAnd, false)
		w.WriteSQL(" AND ")
		writeExprChild(w, *rhs.rhs, OpAnd, false)
		return
	}
	writeExprChild(w, rhs, op, false)
}

func writeExpr(w SQLWriter, e Expr) {
	switch e.kind {
	case exprColumn:
		writeColumnRef(w, e.col)
	case exprKeyword:
		w.WriteSQL(e.kw.text())
	case exprTuple:
		w.WriteSQL("(")
		for i, item := range e.items {
			if i > 0 {
				w.WriteSQL(", ")
			}
			writeExpr(w, item)
		}
		w.WriteSQL(")")
	case exprValue:
		w.WriteValue(e.val)
	case exprUnary:
		operand := *e.lhs
		w.WriteSQL(e.unop.text())
		w.WriteSQL(" ")
		paren := !isAtomic(operand) &&
			!(operand.kind == exprBinary && operand.op.class() > precLogical)
		if paren {
			w.WriteSQL("(")
		}
		writeExpr(w, operand)
		if paren {
			w.WriteSQL(")")
		}
	case exprBinary:
		writeBinaryExpr(w, *e.lhs, e.op, *e.rhs)
	case exprFunction:
		w.WriteSQL(e.name)
		w.WriteSQL("(")
		for i, arg := range e.items {
			if i > 0 {
				w.WriteSQL(", ")
			}
			writeExpr(w, arg)
		}
		w.WriteSQL(")")
	case exprSubQuery:
		w.WriteSQL(e.subOp.text())
		w.WriteSQL("(")
		writeSelect(w, e.sub)
		w.WriteSQL(")")
	case exprCustom:
		w.WriteSQL(e.name)
	}
}

// Fingerprint is a structural FNV-1a hash of the expression shape, stable
// across renders and usable as a querycache key.
func (e Expr) Fingerprint() uint64 {
	h := fnv.New64a()
	e.hashInto(h.Write)
	return h.Sum64()
}

func (e Expr) hashInto(write func([]byte) (int, error)) {
	write([]byte{byte(e.kind)})
	switch e.kind {
	case exprColumn:
		var w InlineWriter
		writeColumnRef(&w, e.col)
		write([]byte(w.String()))
	case exprKeyword:
		write([]byte(e.kw.text()))
	case exprValue:
		write(u64ToBytes(e.val.Fingerprint()))
	case exprTuple, exprFunction:
		write([]byte(e.name))
		for _, item := range e.items {
			item.hashInto(write)
		}
	case exprUnary:
		write([]byte(e.unop.text()))
		e.lhs.hashInto(write)
	case exprBinary:
		write([]byte(e.op.text()))
		e.lhs.hashInto(write)
		e.rhs.hashInto(write)
	case exprSubQuery:
		write([]byte(e.subOp.text()))
		write(u64ToBytes(e.sub.Fingerprint()))
	case exprCustom:
		write([]byte(e.name))
	}
}
