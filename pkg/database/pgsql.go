package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPgxPool creates a PostgreSQL connection pool. maxConns <= 0 keeps the pgx default.
// When enableCheck is set the pool is pinged before it is returned.
func NewPgxPool(ctx context.Context, databaseURL string, maxConns int32, enableCheck bool) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	if maxConns > 0 {
		poolConfig.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if enableCheck {
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		slog.Info("Connected to PostgreSQL", slog.Int("max_conns", int(poolConfig.MaxConns)))
	}
	return pool, nil
}

// ClosePgxPool closes the pool, if any.
func ClosePgxPool(pool *pgxpool.Pool) {
	if pool == nil {
		return
	}
	pool.Close()
	slog.Info("PostgreSQL connection pool closed")
}
