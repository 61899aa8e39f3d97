package pqb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBare(t *testing.T) {
	assert.Equal(t, `SELECT 1`, NewSelect().Expr(Val(1)).ToSQL())
}

func TestSelectWhere(t *testing.T) {
	sel := NewSelect().
		Column("n").
		From("tbl").
		AndWhere(Col("region").Eq("CN"))

	assert.Equal(t, `SELECT "n" FROM "tbl" WHERE "region" = 'CN'`, sel.ToSQL())

	sql, values := sel.ToValues()
	assert.Equal(t, `SELECT "n" FROM "tbl" WHERE "region" = $1`, sql)
	require.Len(t, values, 1)
	assert.Equal(t, StringValue("CN"), values[0])
}

func TestSelectLimitOffset(t *testing.T) {
	assert.Equal(t,
		`SELECT "character", "size_w", "size_h" FROM "character" LIMIT 10 OFFSET 100`,
		NewSelect().
			Columns("character", "size_w", "size_h").
			From("character").
			Limit(10).
			Offset(100).
			ToSQL())
}

func TestSelectWhereFoldsUnderAnd(t *testing.T) {
	sel := NewSelect().
		Columns("character", "size_w", "size_h").
		From("character").
		AndWhere(Col("size_w").Eq(3))
	assert.Equal(t,
		`SELECT "character", "size_w", "size_h" FROM "character" WHERE "size_w" = 3`,
		sel.ToSQL())

	sel.AndWhere(Col("size_h").Eq(4))
	assert.Equal(t,
		`SELECT "character", "size_w", "size_h" FROM "character" WHERE "size_w" = 3 AND "size_h" = 4`,
		sel.ToSQL())
}

func TestSelectFromSubquery(t *testing.T) {
	assert.Equal(t,
		`SELECT "aspect" FROM (SELECT "image", "aspect" FROM "glyph") AS "subglyph"`,
		NewSelect().
			Column("aspect").
			FromSubquery(NewSelect().Columns("image", "aspect").From("glyph"), "subglyph").
			ToSQL())
}

func TestSelectQualifiedIn(t *testing.T) {
	assert.Equal(t,
		`SELECT "glyph"."image" FROM "glyph" WHERE "glyph"."aspect" IN (3, 4)`,
		NewSelect().
			Column("glyph", "image").
			From("glyph").
			AndWhere(Col("glyph", "aspect").In(3, 4)).
			ToSQL())
}

func TestSelectGroupByHaving(t *testing.T) {
	assert.Equal(t,
		`SELECT "aspect", MAX("image") FROM "glyph" GROUP BY "aspect" HAVING "aspect" > 2`,
		NewSelect().
			Column("aspect").
			Expr(Col("image").Max()).
			From("glyph").
			GroupByColumns("aspect").
			AndHaving(Col("aspect").Gt(2)).
			ToSQL())
}

func TestSelectJoins(t *testing.T) {
	assert.Equal(t,
		`SELECT "u"."name", "o"."total" FROM "users" AS "u" INNER JOIN "orders" AS "o" ON "o"."user_id" = "u"."id"`,
		NewSelect().
			Column("u", "name").
			Column("o", "total").
			FromAs("u", "users").
			JoinAs(InnerJoin, TableRefOf(Table("orders")).As("o"), Col("o", "user_id").Eq(Col("u", "id"))).
			ToSQL())

	assert.Equal(t,
		`SELECT "font"."name" FROM "glyph" LEFT JOIN "font" ON "glyph"."font_id" = "font"."id"`,
		NewSelect().
			Column("font", "name").
			From("glyph").
			LeftJoin(Table("font"), Col("glyph", "font_id").Eq(Col("font", "id"))).
			ToSQL())
}

func TestSelectOrderByNulls(t *testing.T) {
	assert.Equal(t,
		`SELECT "id" FROM "t" ORDER BY "a" ASC, "b" DESC NULLS LAST, "c" ASC NULLS FIRST`,
		NewSelect().
			Column("id").
			From("t").
			OrderBy(
				OrderColumn("a").Asc(),
				OrderColumn("b").Desc().NullsLast(),
				OrderColumn("c").Asc().NullsFirst(),
			).
			ToSQL())
}

func TestSelectExprAlias(t *testing.T) {
	assert.Equal(t,
		`SELECT COUNT(*) AS "total" FROM "events"`,
		NewSelect().ExprAs(CountAll(), "total").From("events").ToSQL())
}

func TestSelectLocks(t *testing.T) {
	base := func() *Select { return NewSelect().Column("id").From("jobs") }

	assert.Equal(t, `SELECT "id" FROM "jobs" FOR UPDATE`,
		base().Lock(ForUpdate()).ToSQL())
	assert.Equal(t, `SELECT "id" FROM "jobs" FOR NO KEY UPDATE NOWAIT`,
		base().Lock(ForNoKeyUpdate().NoWait()).ToSQL())
	assert.Equal(t, `SELECT "id" FROM "jobs" FOR SHARE SKIP LOCKED`,
		base().Lock(ForShare().SkipLocked()).ToSQL())
	assert.Equal(t, `SELECT "id" FROM "jobs" FOR KEY SHARE OF "jobs"`,
		base().Lock(ForKeyShare().Of(Table("jobs"))).ToSQL())
	assert.Equal(t, `SELECT "id" FROM "jobs" FOR UPDATE OF "jobs" SKIP LOCKED`,
		base().Lock(ForUpdate().Of(Table("jobs")).SkipLocked()).ToSQL())
}

func TestSelectTableSample(t *testing.T) {
	assert.Equal(t,
		`SELECT "id" FROM "events" TABLESAMPLE SYSTEM (10)`,
		NewSelect().Column("id").From("events").Sample(SystemSample(10)).ToSQL())
	assert.Equal(t,
		`SELECT "id" FROM "events" TABLESAMPLE BERNOULLI (0.5) REPEATABLE (42)`,
		NewSelect().Column("id").From("events").Sample(BernoulliSample(0.5).Repeatable(42)).ToSQL())
}

func TestSelectWithCTE(t *testing.T) {
	with := NewWith().CTE(
		NewCTE("recent").
			Columns("id", "created_at").
			Select(NewSelect().Columns("id", "created_at").From("events").Limit(10)),
	)
	assert.Equal(t,
		`WITH "recent" ("id", "created_at")  AS (SELECT "id", "created_at" FROM "events" LIMIT 10) SELECT "id" FROM "recent"`,
		NewSelect().Column("id").From("recent").With(with).ToSQL())
}

func TestSelectWithMaterializedCTE(t *testing.T) {
	with := NewWith().CTE(
		NewCTE("heavy").
			Select(NewSelect().Column("id").From("big")).
			Materialized(true),
	)
	assert.Equal(t,
		`WITH "heavy"  AS MATERIALIZED (SELECT "id" FROM "big") SELECT "id" FROM "heavy"`,
		NewSelect().Column("id").From("heavy").With(with).ToSQL())

	with = NewWith().CTE(
		NewCTE("cheap").
			Select(NewSelect().Column("id").From("small")).
			Materialized(false),
	)
	assert.Equal(t,
		`WITH "cheap"  AS NOT MATERIALIZED (SELECT "id" FROM "small") SELECT "id" FROM "cheap"`,
		NewSelect().Column("id").From("cheap").With(with).ToSQL())
}

func TestSelectCTEValuesStayInline(t *testing.T) {
	with := NewWith().CTE(
		NewCTE("vals").
			Columns("n", "s").
			Values(
				[]Value{Int64Value(1), StringValue("a")},
				[]Value{Int64Value(2), StringValue("b")},
			),
	)
	sel := NewSelect().
		Columns("n", "s").
		From("vals").
		With(with).
		AndWhere(Col("n").Gt(0))

	// VALUES rows never become placeholders; only the WHERE value does.
	sql, values := sel.ToValues()
	assert.Equal(t,
		`WITH "vals" ("n", "s")  AS VALUES (1, 'a'), (2, 'b') SELECT "n", "s" FROM "vals" WHERE "n" > $1`,
		sql)
	require.Len(t, values, 1)
	assert.Equal(t, Int64Value(0), values[0])
}

func TestSelectMultipleFrom(t *testing.T) {
	assert.Equal(t,
		`SELECT "a"."x", "b"."y" FROM "a", "b" WHERE "a"."id" = "b"."a_id"`,
		NewSelect().
			Column("a", "x").
			Column("b", "y").
			From("a").
			From("b").
			AndWhere(Col("a", "id").Eq(Col("b", "a_id"))).
			ToSQL())
}

func TestSelectFingerprint(t *testing.T) {
	a := NewSelect().Column("id").From("t").AndWhere(Col("id").Eq(1))
	b := NewSelect().Column("id").From("t").AndWhere(Col("id").Eq(1))
	c := NewSelect().Column("id").From("t").AndWhere(Col("id").Eq(2))
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}
