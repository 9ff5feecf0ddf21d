package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae un *pgxpool.Pool o una pgx.Tx para que los repositorios funcionen
// igual dentro y fuera de una transacción. pgxpool libera la conexión adquirida en
// todas las salidas (éxito, error o pánico); los repositorios solo deben cerrar rows.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
