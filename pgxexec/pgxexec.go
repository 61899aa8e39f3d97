// Package pgxexec runs pqb statements on pgx connections. The core library
// stays I/O-free; this is the bridge from the placeholder/value contract to
// actual execution.
package pgxexec

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fast/pqb"
)

// Queryer is the subset of pgx behavior needed to run statements. Both
// *pgxpool.Pool and *pgx.Conn satisfy it.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var (
	_ Queryer = (*pgxpool.Pool)(nil)
	_ Queryer = (*pgx.Conn)(nil)
)

// Args converts bind values into driver arguments, nulls included.
func Args(values []pqb.Value) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v.Native()
	}
	return out
}

// Query renders the statement with placeholders and runs it.
func Query(ctx context.Context, q Queryer, st pqb.Statement) (pgx.Rows, error) {
	sql, values := st.ToValues()
	return q.Query(ctx, sql, Args(values)...)
}

// Exec renders the statement with placeholders and executes it.
func Exec(ctx context.Context, q Queryer, st pqb.Statement) (pgconn.CommandTag, error) {
	sql, values := st.ToValues()
	return q.Exec(ctx, sql, Args(values)...)
}
