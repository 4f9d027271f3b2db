// Command history prints the revision trail of one tracked record and,
// optionally, its state reconstructed at a given revision.
//
// Usage:
//
//	history -model company -id <uuid> [-at N] [-changes] [-config path]
//
// -at 0 reconstructs the latest revision. The model accepts singular or
// plural names.
//
// Exit codes: 0 = success, 1 = error, 2 = bad usage.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/adapter/postgres"
	"github.com/heartmarshall/placement-backend/internal/app"
	"github.com/heartmarshall/placement-backend/internal/config"
	"github.com/heartmarshall/placement-backend/internal/domain"
	"github.com/heartmarshall/placement-backend/internal/service/history"
)

func main() {
	modelFlag := flag.String("model", "", "tracked model (company, opportunity)")
	idFlag := flag.String("id", "", "record id")
	atFlag := flag.Int("at", -1, "reconstruct the record at this revision (0 = latest)")
	changesFlag := flag.Bool("changes", false, "print the field changes of every revision")
	configFlag := flag.String("config", os.Getenv("CONFIG_PATH"), "config file (default ./config.yaml when present)")
	flag.Parse()

	id, err := uuid.Parse(*idFlag)
	if *modelFlag == "" || err != nil {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadFile(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
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
	svc := deps.HistoryService
	input := history.ListRevisionsInput{Model: *modelFlag, ID: id}

	trail, err := svc.Trail(ctx, input)
	if err != nil {
		logger.Error("load history", slog.String("error", err.Error()))
		os.Exit(1)
	}
	printTrail(os.Stdout, trail, *changesFlag)

	if *atFlag < 0 {
		return
	}

	snap, err := svc.Reconstruct(ctx, history.ReconstructInput{Model: *modelFlag, ID: id, Revision: *atFlag})
	if err != nil {
		logger.Error("reconstruct", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := printSnapshot(os.Stdout, snap); err != nil {
		logger.Error("print snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func printTrail(w io.Writer, trail []domain.RevisionEntry, withChanges bool) {
	if len(trail) == 0 {
		fmt.Fprintln(w, "no revisions")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REV\tOPERATION\tCHANGES\tACTOR\tRECORDED AT")
	for _, e := range trail {
		actor := "-"
		if e.UserID != nil {
			actor = e.UserID.String()
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n",
			e.Revision.Revision, e.Operation, len(e.Changes), actor, e.CreatedAt.Format(time.RFC3339))

		if !withChanges {
			continue
		}
		for _, c := range e.Changes {
			fmt.Fprintf(tw, "\t  %s\t%s\t%s\t%s\n", c.Path, c.Diff.Kind, formatValue(c.Diff.Old), formatValue(c.Diff.New))
		}
	}
	tw.Flush()
}

func printSnapshot(w io.Writer, snap domain.Snapshot) error {
	fmt.Fprintf(w, "\n%s %s at revision %d (%s)\n", snap.Model, snap.DocumentID, snap.Revision, snap.Operation)
	if !snap.Exists {
		fmt.Fprintln(w, "record destroyed")
		return nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap.Fields)
}

func formatValue(v any) string {
	if v == nil {
		return "-"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
