// Command seeder loads demo companies and opportunities from a YAML fixture.
// Records are created through the services, so each one starts with a
// revision trail. It is intended to be run offline, not as part of the main
// server.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        validate the fixture without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/placement-backend/internal/adapter/postgres"
	"github.com/heartmarshall/placement-backend/internal/app"
	"github.com/heartmarshall/placement-backend/internal/app/seeder"
	"github.com/heartmarshall/placement-backend/internal/config"
	"github.com/heartmarshall/placement-backend/internal/service/company"
	"github.com/heartmarshall/placement-backend/internal/service/opportunity"
)

var (
	_ seeder.CompanyCreator       = (*company.Service)(nil)
	_ seeder.OpportunityPublisher = (*opportunity.Service)(nil)
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "validate the fixture without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	fixture, err := seeder.LoadFixture(seederCfg.FixturePath)
	if err != nil {
		logger.Error("load fixture", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if appCfg.Database.AutoMigrate && !seederCfg.DryRun {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	deps, err := app.NewDeps(logger, pool, appCfg, nil)
	if err != nil {
		logger.Error("wire dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pipeline := seeder.NewPipeline(logger, deps.CompanyService, deps.OpportunityService, *seederCfg)
	if err := pipeline.Run(ctx, fixture, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
