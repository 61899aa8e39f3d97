// Package pqb builds PostgreSQL statements from typed expression trees.
//
// Statements render in two modes: ToSQL inlines every value as a literal,
// ToValues replaces values with $1, $2, ... placeholders and returns them in
// placeholder order. Both modes emit byte-identical SQL around the value
// positions. Rendering is total; contract violations (mismatched VALUES
// arity, a generated column with a default, zero-size char types) panic at
// build time instead.
package pqb

// Statement is anything that renders to a complete SQL statement.
type Statement interface {
	ToSQL() string
	ToValues() (string, []Value)
}

// Explainable marks the statements EXPLAIN can wrap.
type Explainable interface {
	Statement
	explainable()
}
