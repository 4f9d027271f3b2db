package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/placement-backend/internal/adapter/postgres"
	"github.com/heartmarshall/placement-backend/internal/config"
	"github.com/heartmarshall/placement-backend/internal/metrics"
	"github.com/heartmarshall/placement-backend/internal/revision"
	"github.com/heartmarshall/placement-backend/internal/transport/middleware"
)

// Run is the server entry point. It loads configuration, connects to the
// database, applies migrations when enabled, wires the revision tracker and
// services, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("revision_mode", cfg.Revision.Mode),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	var (
		m        *metrics.Metrics
		observer revision.Observer
	)
	if cfg.Metrics.Enabled {
		m = metrics.New()
		observer = m
	}

	deps, err := NewDeps(logger, pool, cfg, observer)
	if err != nil {
		return fmt.Errorf("wire dependencies: %w", err)
	}
	logger.Info("revision tracking enabled", slog.Any("models", deps.Registry.Models()))

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := NewServer(cfg.Server, NewHandler(cfg, logger, pool, deps, m, limiter))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
