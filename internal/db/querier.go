package db

import (
	"context"
	"database/sql"
)

// Querier is the slice of database/sql that the module cache repository
// needs: single-row reads and writes. Both *sql.DB and *sql.Tx satisfy it,
// so the repository works unchanged inside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)
