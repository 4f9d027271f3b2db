package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/placement-backend/internal/config"
)

// NewPool connects to PostgreSQL and pings it. Connections carry
// cfg.ApplicationName, and statements slower than cfg.SlowQueryThreshold
// are logged through log.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	if cfg.ApplicationName != "" {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = cfg.ApplicationName
	}
	if cfg.SlowQueryThreshold > 0 {
		poolCfg.ConnConfig.Tracer = newSlowQueryTracer(log, cfg.SlowQueryThreshold)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.InfoContext(ctx, "database connected",
		slog.Int("max_conns", int(cfg.MaxConns)),
		slog.Duration("slow_query_threshold", cfg.SlowQueryThreshold),
	)
	return pool, nil
}
