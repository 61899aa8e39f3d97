package pqb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesWriterPlaceholderOrder(t *testing.T) {
	sel := NewSelect().
		Column("region").
		From("t").
		AndWhere(Col("region").Eq("CN")).
		AndWhere(Col("population").Gt(1000))

	sql, values := sel.ToValues()
	assert.Equal(t, `SELECT "region" FROM "t" WHERE "region" = $1 AND "population" > $2`, sql)
	require.Len(t, values, 2)
	assert.Equal(t, StringValue("CN"), values[0])
	assert.Equal(t, Int64Value(1000), values[1])
}

func TestInlineAndPlaceholderModesMatchOutsideValues(t *testing.T) {
	sel := NewSelect().
		Columns("a", "b").
		From("t").
		AndWhere(Col("a").Eq(1)).
		AndWhere(Col("b").In("x", "y")).
		OrderBy(OrderColumn("a").Desc()).
		Limit(5)

	inline := sel.ToSQL()
	params, values := sel.ToValues()

	assert.Equal(t, `SELECT "a", "b" FROM "t" WHERE "a" = 1 AND "b" IN ('x', 'y') ORDER BY "a" DESC LIMIT 5`, inline)
	assert.Equal(t, `SELECT "a", "b" FROM "t" WHERE "a" = $1 AND "b" IN ($2, $3) ORDER BY "a" DESC LIMIT 5`, params)
	require.Len(t, values, 3)

	// Re-rendering is deterministic.
	again, _ := sel.ToValues()
	assert.Equal(t, params, again)
}

func TestTypedNullsTravelAsParameters(t *testing.T) {
	upd := NewUpdate().
		Table("users").
		Value("nickname", NullOf(ValueString)).
		AndWhere(Col("id").Eq(7))

	sql, values := upd.ToValues()
	assert.Equal(t, `UPDATE "users" SET "nickname" = $1 WHERE "id" = $2`, sql)
	require.Len(t, values, 2)
	assert.True(t, values[0].IsNull())
	assert.Equal(t, ValueString, values[0].Kind())
}

func TestInlineWriterRendersLiterals(t *testing.T) {
	w := NewInlineWriter()
	w.WriteSQL("x = ")
	w.WriteValue(StringValue("it's"))
	assert.Equal(t, `x = E'it\'s'`, w.String())
}

func TestEscapedStringsSurviveUnescape(t *testing.T) {
	// Sanity-check the escape form: undoing the backslash escapes yields the
	// original text, so escaping loses nothing.
	inputs := []string{
		"plain",
		"it's",
		`a\b'c`,
		"line\nbreak\tand\rmore",
		"nul\x00middle",
	}
	replacer := strings.NewReplacer(
		`\b`, "\b", `\f`, "\f", `\n`, "\n", `\r`, "\r", `\t`, "\t",
		`\\`, "\\", `\'`, "'", `\0`, "\x00",
	)
	for _, in := range inputs {
		var sb strings.Builder
		writeStringLiteral(&sb, in)
		got := sb.String()
		got = strings.TrimSuffix(strings.TrimPrefix(got, "E"), "'")
		got = strings.TrimPrefix(got, "'")
		assert.Equal(t, in, replacer.Replace(got), "input %q", in)
	}
}
