package postgres

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/placement-backend/pkg/ctxutil"
)

// revisionTables are the history tables; slow writes to them are called out
// separately because they run inside every tracked mutation.
var revisionTables = []string{"revisions", "revision_changes"}

type queryStartKey struct{}

type queryStart struct {
	at  time.Time
	sql string
}

// slowQueryTracer is a pgx.QueryTracer that logs statements exceeding a
// threshold.
type slowQueryTracer struct {
	log       *slog.Logger
	threshold time.Duration
	now       func() time.Time
}

func newSlowQueryTracer(log *slog.Logger, threshold time.Duration) *slowQueryTracer {
	return &slowQueryTracer{
		log:       log.With("component", "postgres"),
		threshold: threshold,
		now:       time.Now,
	}
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{at: t.now(), sql: data.SQL})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}
	elapsed := t.now().Sub(start.at)
	if elapsed < t.threshold {
		return
	}

	attrs := []any{
		slog.Duration("elapsed", elapsed),
		slog.String("command", data.CommandTag.String()),
		slog.Bool("revision_write", isRevisionWrite(start.sql)),
	}
	if reqID := ctxutil.RequestIDFromCtx(ctx); reqID != "" {
		attrs = append(attrs, slog.String("request_id", reqID))
	}
	if data.Err != nil {
		attrs = append(attrs, slog.String("error", data.Err.Error()))
	}
	t.log.WarnContext(ctx, "slow query", attrs...)
}

// isRevisionWrite reports whether sql inserts into a history table.
func isRevisionWrite(sql string) bool {
	sql = strings.ToLower(sql)
	if !strings.Contains(sql, "insert into") {
		return false
	}
	for _, table := range revisionTables {
		if strings.Contains(sql, "insert into "+table+" ") || strings.Contains(sql, "insert into "+table+"(") {
			return true
		}
	}
	return false
}
