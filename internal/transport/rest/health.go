package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/placement-backend/internal/revision"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// trackerStatus reports the revision tracker state shown by /health.
type trackerStatus interface {
	Mode() revision.Mode
	Pending() int
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	tracker trackerStatus
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, tracker trackerStatus, version string) *HealthHandler {
	return &HealthHandler{db: db, tracker: tracker, version: version}
}

// Register mounts the health check routes on mux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /live", h.Live)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.HandleFunc("GET /health", h.Health)
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Mode    string `json:"mode,omitempty"`
	Pending *int   `json:"pending,omitempty"`
}

// Live is the liveness check. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness check. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: database latency, revision tracker mode
// and the number of mutations currently between their two capture hooks.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	pending := h.tracker.Pending()
	components["revision_tracker"] = CompStatus{
		Status:  "ok",
		Mode:    string(h.tracker.Mode()),
		Pending: &pending,
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
