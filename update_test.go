package pqb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBasic(t *testing.T) {
	assert.Equal(t,
		`UPDATE "glyph" SET "aspect" = 2.1345, "image" = '24B' WHERE "id" = 1`,
		NewUpdate().
			Table("glyph").
			Value("aspect", 2.1345).
			Value("image", "24B").
			AndWhere(Col("id").Eq(1)).
			ToSQL())
}

func TestUpdateParameterized(t *testing.T) {
	sql, values := NewUpdate().
		Table("glyph").
		Value("aspect", 2.1345).
		Value("image", "24B").
		AndWhere(Col("id").Eq(1)).
		ToValues()

	assert.Equal(t, `UPDATE "glyph" SET "aspect" = $1, "image" = $2 WHERE "id" = $3`, sql)
	require.Len(t, values, 3)
	assert.Equal(t, Float64Value(2.1345), values[0])
	assert.Equal(t, StringValue("24B"), values[1])
	assert.Equal(t, Int64Value(1), values[2])
}

func TestUpdateExprValue(t *testing.T) {
	assert.Equal(t,
		`UPDATE "counters" SET "hits" = "hits" + 1 WHERE "name" = 'page'`,
		NewUpdate().
			Table("counters").
			Value("hits", Col("hits").Add(1)).
			AndWhere(Col("name").Eq("page")).
			ToSQL())
}

func TestUpdateQualifiedTable(t *testing.T) {
	assert.Equal(t,
		`UPDATE "public"."glyph" SET "image" = 'x'`,
		NewUpdate().Table("public", "glyph").Value("image", "x").ToSQL())
}

func TestUpdateKeywordValue(t *testing.T) {
	assert.Equal(t,
		`UPDATE "sessions" SET "touched_at" = CURRENT_TIMESTAMP WHERE "id" = 9`,
		NewUpdate().
			Table("sessions").
			Value("touched_at", CurrentTimestamp()).
			AndWhere(Col("id").Eq(9)).
			ToSQL())
}

func TestUpdateReturning(t *testing.T) {
	assert.Equal(t,
		`UPDATE "glyph" SET "aspect" = 2.1345 WHERE "id" = 1 RETURNING *`,
		NewUpdate().
			Table("glyph").
			Value("aspect", 2.1345).
			AndWhere(Col("id").Eq(1)).
			Returning(ReturningAll()).
			ToSQL())

	assert.Equal(t,
		`UPDATE "glyph" SET "aspect" = 2.1345 WHERE "id" = 1 RETURNING "id", "aspect"`,
		NewUpdate().
			Table("glyph").
			Value("aspect", 2.1345).
			AndWhere(Col("id").Eq(1)).
			Returning(ReturningColumns("id", "aspect")).
			ToSQL())
}
