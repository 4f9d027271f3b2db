// Command cleanup purges opportunities archived longer than the configured
// retention period. Each purge leaves a destroy revision, so the trail of a
// purged opportunity stays readable. It is intended to be invoked by an
// external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/placement-backend/internal/adapter/postgres"
	"github.com/heartmarshall/placement-backend/internal/app"
	"github.com/heartmarshall/placement-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	deps, err := app.NewDeps(logger, pool, cfg, nil)
	if err != nil {
		logger.Error("wire dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	threshold := time.Now().AddDate(0, 0, -cfg.Opportunity.ArchiveRetentionDays)

	purged, err := deps.OpportunityService.PurgeArchivedBefore(ctx, threshold)
	if err != nil {
		logger.Error("purge archived opportunities failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
			slog.Int("purged", purged),
		)
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int("purged", purged),
		slog.Time("threshold", threshold),
	)
}
