package pqb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func exprSQL(e Expr) string {
	w := NewInlineWriter()
	writeExpr(w, e)
	return w.String()
}

func TestComparisonOperators(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"eq", Col("a").Eq(1), `"a" = 1`},
		{"ne", Col("a").Ne(1), `"a" <> 1`},
		{"lt", Col("a").Lt(1), `"a" < 1`},
		{"lte", Col("a").Lte(1), `"a" <= 1`},
		{"gt", Col("a").Gt(1), `"a" > 1`},
		{"gte", Col("a").Gte(1), `"a" >= 1`},
		{"like", Col("a").Like("x%"), `"a" LIKE 'x%'`},
		{"not like", Col("a").NotLike("x%"), `"a" NOT LIKE 'x%'`},
		{"is null", Col("a").IsNull(), `"a" IS NULL`},
		{"is not null", Col("a").IsNotNull(), `"a" IS NOT NULL`},
		{"mod", Col("a").Mod(2), `"a" % 2`},
		{"shift left", Col("a").ShiftLeft(2), `"a" << 2`},
		{"shift right", Col("a").ShiftRight(2), `"a" >> 2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exprSQL(tt.expr))
		})
	}
}

func TestEmptyInRewrites(t *testing.T) {
	assert.Equal(t, `1 = 2`, exprSQL(Col("a").In()))
	assert.Equal(t, `1 = 1`, exprSQL(Col("a").NotIn()))
}

func TestInTuple(t *testing.T) {
	assert.Equal(t, `"glyph"."aspect" IN (3, 4)`, exprSQL(Col("glyph", "aspect").In(3, 4)))
	assert.Equal(t, `"a" NOT IN ('x', 'y')`, exprSQL(Col("a").NotIn("x", "y")))
}

func TestLeftAssociativityElision(t *testing.T) {
	assert.Equal(t, `"a" + "b" + "c"`, exprSQL(Col("a").Add(Col("b")).Add(Col("c"))))
	assert.Equal(t, `"a" * "b" * "c"`, exprSQL(Col("a").Mul(Col("b")).Mul(Col("c"))))
	// Right-nested same op keeps parentheses.
	assert.Equal(t, `"a" + ("b" + "c")`, exprSQL(Col("a").Add(Col("b").Add(Col("c")))))
	// Sub is in the elision set only on the left.
	assert.Equal(t, `"a" - "b" - "c"`, exprSQL(Col("a").Sub(Col("b")).Sub(Col("c"))))
	assert.Equal(t, `"a" - ("b" - "c")`, exprSQL(Col("a").Sub(Col("b").Sub(Col("c")))))
}

func TestPrecedenceClasses(t *testing.T) {
	// Arithmetic binds tighter than comparison: no parentheses.
	assert.Equal(t, `"x" * 2 = "y" / 2`, exprSQL(Col("x").Mul(2).Eq(Col("y").Div(2))))
	// Comparison binds tighter than logical.
	assert.Equal(t, `"x" = 1 OR ("y" = 2 AND "z" = 3)`,
		exprSQL(Col("x").Eq(1).Or(Col("y").Eq(2).And(Col("z").Eq(3)))))
	// AND chains elide on the left.
	assert.Equal(t, `"a" = 1 AND "b" = 2 AND "c" = 3`,
		exprSQL(Col("a").Eq(1).And(Col("b").Eq(2)).And(Col("c").Eq(3))))
	// Same class is never elided across different operators.
	assert.Equal(t, `("a" = 1) = ("b" = 2)`, exprSQL(Col("a").Eq(1).Eq(Col("b").Eq(2))))
}

func TestBetween(t *testing.T) {
	assert.Equal(t, `"col" BETWEEN 3 AND 5`, exprSQL(Col("col").Between(3, 5)))
	assert.Equal(t, `"col" NOT BETWEEN 3 AND 5`, exprSQL(Col("col").NotBetween(3, 5)))
	// Arithmetic endpoints stay bare; class is above logical.
	assert.Equal(t, `"col" BETWEEN "lo" + 1 AND "hi" - 1`,
		exprSQL(Col("col").Between(Col("lo").Add(1), Col("hi").Sub(1))))
}

func TestNot(t *testing.T) {
	assert.Equal(t, `NOT "a"`, exprSQL(Col("a").Not()))
	assert.Equal(t, `NOT "a" = 1`, exprSQL(Col("a").Eq(1).Not()))
	assert.Equal(t, `NOT ("a" = 1 AND "b" = 2)`, exprSQL(Col("a").Eq(1).And(Col("b").Eq(2)).Not()))
	assert.Equal(t, `NOT (NOT "a")`, exprSQL(Col("a").Not().Not()))
}

func TestUnaryAndCustomChildrenGetParens(t *testing.T) {
	assert.Equal(t, `(NOT "a") AND "b"`, exprSQL(Col("a").Not().And(Col("b"))))
	assert.Equal(t, `(age > 18) AND "b"`, exprSQL(Custom("age > 18").And(Col("b"))))
}

func TestRangeOperators(t *testing.T) {
	left := Col("r1")
	right := Col("r2")
	sql := NewSelect().
		Expr(Asterisk()).
		From("ranges").
		AndWhere(left.Contains(right)).
		AndWhere(left.ContainedBy(right)).
		AndWhere(left.Overlaps(right)).
		AndWhere(left.StrictlyLeftOf(right)).
		AndWhere(left.StrictlyRightOf(right)).
		AndWhere(left.DoesNotExtendRightOf(right)).
		AndWhere(left.DoesNotExtendLeftOf(right)).
		AndWhere(left.AdjacentTo(right)).
		ToSQL()
	assert.Equal(t,
		`SELECT * FROM "ranges" WHERE "r1" @> "r2" AND "r1" <@ "r2" AND "r1" && "r2" AND "r1" << "r2" AND "r1" >> "r2" AND "r1" &< "r2" AND "r1" &> "r2" AND "r1" -|- "r2"`,
		sql)
}

func TestFunctions(t *testing.T) {
	assert.Equal(t, `SELECT int8range(1, 10, '[]')`,
		NewSelect().Expr(Function("int8range", Val(1), Val(10), Val("[]"))).ToSQL())
	assert.Equal(t, `MAX("image")`, exprSQL(Col("image").Max()))
	assert.Equal(t, `COUNT(*)`, exprSQL(CountAll()))
	assert.Equal(t, `LOWER("tokens")`, exprSQL(Lower(Col("tokens"))))
	assert.Equal(t, `COALESCE("nick", 'anon')`, exprSQL(Col("nick").IfNull("anon")))
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, `CURRENT_TIMESTAMP`, exprSQL(CurrentTimestamp()))
	assert.Equal(t, `"expires_at" > CURRENT_TIMESTAMP`, exprSQL(Col("expires_at").Gt(CurrentTimestamp())))
}

func TestSubqueryExprs(t *testing.T) {
	ids := NewSelect().Column("id").From("banned")
	assert.Equal(t, `"id" IN (SELECT "id" FROM "banned")`, exprSQL(Col("id").InSubquery(ids)))
	assert.Equal(t, `"id" NOT IN (SELECT "id" FROM "banned")`, exprSQL(Col("id").NotInSubquery(ids)))
	assert.Equal(t, `EXISTS(SELECT "id" FROM "banned")`, exprSQL(Exists(ids)))
	assert.Equal(t, `"id" = ANY(SELECT "id" FROM "banned")`, exprSQL(Col("id").Eq(AnyOf(ids))))
}

func TestTupleRendering(t *testing.T) {
	assert.Equal(t, `("a", "b") = ("c", "d")`,
		exprSQL(Tuple(Col("a"), Col("b")).Eq(Tuple(Col("c"), Col("d")))))
}

func TestExprFingerprint(t *testing.T) {
	a := Col("x").Eq(1).And(Col("y").Eq(2))
	b := Col("x").Eq(1).And(Col("y").Eq(2))
	c := Col("x").Eq(1).Or(Col("y").Eq(2))
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
