package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Connect opens the pgx pool. An unreachable database is logged as a warning
// rather than treated as fatal: the service starts in degraded mode and every
// request fails with an error response until the database comes back.
func Connect(ctx context.Context, dsn string, logger *zap.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Warn("database is not reachable, starting in degraded mode", zap.Error(err))
		return pool, nil
	}

	logger.Info("connected to PostgreSQL")
	return pool, nil
}
