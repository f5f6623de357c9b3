package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de operações comum a *sql.DB e *sql.Tx que os
// repositórios utilizam
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
