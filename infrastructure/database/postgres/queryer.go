package postgres

import (
	"context"
	"database/sql"
)

// Queryer é a superfície somente-leitura usada pelos repositórios
type Queryer interface {
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
