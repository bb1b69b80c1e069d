package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "hr-reports/pkg/errors"
)

// Connect opens a pgx pool and verifies it with a ping. Any failure comes
// back as a ConnectionError so callers never retry it.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, apperrors.NewConnectionError(err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, apperrors.NewConnectionError(err)
	}

	return pool, nil
}
