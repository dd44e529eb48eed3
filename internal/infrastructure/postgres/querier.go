package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier lo cumplen *pgxpool.Pool, pgx.Tx y los mocks de pgxmock.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
