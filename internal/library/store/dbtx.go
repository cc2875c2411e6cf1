package store

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql the store uses.
// Both *sql.DB and *sql.Tx satisfy this interface, so callers may run
// store operations inside their own transactions.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
