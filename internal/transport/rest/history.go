package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
	"github.com/heartmarshall/placement-backend/internal/service/history"
	"github.com/heartmarshall/placement-backend/internal/transport/middleware"
)

type historyService interface {
	Models() []string
	ListRevisions(ctx context.Context, input history.ListRevisionsInput) ([]domain.Revision, error)
	Trail(ctx context.Context, input history.ListRevisionsInput) ([]domain.RevisionEntry, error)
	ListRecent(ctx context.Context, input history.ListRecentInput) ([]domain.Revision, error)
	GetRevision(ctx context.Context, id uuid.UUID) (domain.Revision, error)
	ListChanges(ctx context.Context, revisionID uuid.UUID) ([]domain.RevisionChange, error)
	Reconstruct(ctx context.Context, input history.ReconstructInput) (domain.Snapshot, error)
}

// HistoryHandler serves the read-only revision trail of tracked records.
type HistoryHandler struct {
	history historyService
	log     *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{
		history: svc,
		log:     logger.With("handler", "history"),
	}
}

// Register mounts the history routes on mux. mws wrap every route
// individually so the mux still records the matched pattern.
func (h *HistoryHandler) Register(mux *http.ServeMux, mws ...middleware.Middleware) {
	wrap := middleware.Chain(mws...)
	routes := map[string]http.HandlerFunc{
		"GET /admin/models":                             h.Models,
		"GET /admin/history/{model}":                    h.Recent,
		"GET /admin/history/{model}/{id}":               h.Revisions,
		"GET /admin/history/{model}/{id}/at/{revision}": h.At,
		"GET /admin/revisions/{id}":                     h.Revision,
		"GET /admin/revisions/{id}/changes":             h.Changes,
	}
	for pattern, fn := range routes {
		mux.Handle(pattern, wrap(fn))
	}
}

// Models lists the tracked model names.
// GET /admin/models
func (h *HistoryHandler) Models(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"models": h.history.Models()})
}

// Recent lists the latest revisions of a model, newest first.
// GET /admin/history/{model}?limit=50&offset=0
func (h *HistoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	revs, err := h.history.ListRecent(r.Context(), history.ListRecentInput{
		Model:  r.PathValue("model"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRevisionResponses(revs))
}

// Revisions lists the revisions of one record in ascending order. With
// ?changes=true every revision carries its field changes.
// GET /admin/history/{model}/{id}
func (h *HistoryHandler) Revisions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	input := history.ListRevisionsInput{Model: r.PathValue("model"), ID: id}

	withChanges, err := strconv.ParseBool(defaultString(r.URL.Query().Get("changes"), "false"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "changes must be a boolean")
		return
	}

	if withChanges {
		entries, trailErr := h.history.Trail(r.Context(), input)
		if trailErr != nil {
			handleError(h.log, w, r, trailErr)
			return
		}
		writeJSON(w, http.StatusOK, toEntryResponses(entries))
		return
	}

	revs, err := h.history.ListRevisions(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRevisionResponses(revs))
}

// At returns the reconstructed state of a record after a revision.
// "latest" selects the last revision.
// GET /admin/history/{model}/{id}/at/{revision}
func (h *HistoryHandler) At(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var n int
	if raw := r.PathValue("revision"); raw != "latest" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, r, http.StatusBadRequest, "revision must be a positive integer or \"latest\"")
			return
		}
		n = parsed
	}

	snap, err := h.history.Reconstruct(r.Context(), history.ReconstructInput{
		Model:    r.PathValue("model"),
		ID:       id,
		Revision: n,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSnapshotResponse(snap))
}

// Revision returns one revision header.
// GET /admin/revisions/{id}
func (h *HistoryHandler) Revision(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	rev, err := h.history.GetRevision(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRevisionResponse(rev))
}

// Changes lists the field changes of one revision ordered by path.
// GET /admin/revisions/{id}/changes
func (h *HistoryHandler) Changes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	changes, err := h.history.ListChanges(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toChangeResponses(changes))
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, name+" must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return v, true
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
