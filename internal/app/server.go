package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/placement-backend/internal/config"
	"github.com/heartmarshall/placement-backend/internal/metrics"
	"github.com/heartmarshall/placement-backend/internal/transport/middleware"
	"github.com/heartmarshall/placement-backend/internal/transport/rest"
)

// NewHandler builds the HTTP handler: health checks, the history admin API and,
// when enabled, the metrics endpoint. m may be nil when metrics are off.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	deps *Deps,
	m *metrics.Metrics,
	limiter *middleware.RateLimiter,
) http.Handler {
	mux := http.NewServeMux()

	rest.NewHealthHandler(pool, deps.Tracker, BuildVersion()).Register(mux)
	rest.NewHistoryHandler(deps.HistoryService, logger).Register(mux, limiter.Limit(cfg.History.RateLimit))

	var inner http.Handler = mux
	if m != nil {
		mux.Handle("GET "+cfg.Metrics.Path, m.Handler())
		inner = middleware.Metrics(m)(mux)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Actor(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(inner)
}

// NewServer wraps handler in an http.Server configured from cfg.
func NewServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}
