// Package revision records an immutable, field-level history of mutations on
// tracked records. A data-access layer calls CaptureBefore and CaptureAfter
// synchronously around each create, update or destroy; the tracker computes
// the diff, bumps the record's revision counter and appends one Revision with
// its RevisionChanges to the store.
package revision

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
	"github.com/heartmarshall/placement-backend/pkg/ctxutil"
)

// Tracked is implemented by every entity that opts into history.
type Tracked interface {
	RevisionModel() string
	RevisionKey() uuid.UUID
	RevisionNumber() int
	SetRevisionNumber(n int)
	RevisionFields() map[string]any
}

// Store persists revisions. Append must write the header and all changes
// atomically.
type Store interface {
	Append(ctx context.Context, rev domain.Revision, changes []domain.RevisionChange) error
}

// Observer is notified about recorded revisions and failures.
type Observer interface {
	RevisionRecorded(model string, op domain.Operation)
	CaptureFailed(model, stage string)
}

// Mode decides what happens when the revision trail cannot be persisted.
type Mode string

const (
	// ModeBestEffort logs persistence failures and lets the business write commit.
	ModeBestEffort Mode = "best_effort"
	// ModeTransactional returns persistence failures so the caller rolls back.
	ModeTransactional Mode = "transactional"
)

func (m Mode) IsValid() bool {
	return m == ModeBestEffort || m == ModeTransactional
}

// Failure stages reported to the Observer.
const (
	StageBefore  = "before"
	StageAfter   = "after"
	StagePersist = "persist"
)

// Config holds tracker settings.
type Config struct {
	Mode     Mode
	Observer Observer
}

type pendingKey struct {
	model string
	id    uuid.UUID
}

type snapshot struct {
	fields   map[string]any
	revision int
}

// Tracker implements the before/after capture pair.
type Tracker struct {
	store    Store
	registry *Registry
	mode     Mode
	observer Observer
	log      *slog.Logger
	now      func() time.Time

	mu      sync.Mutex
	pending map[pendingKey]snapshot
}

// New creates a Tracker. An invalid or empty mode falls back to best effort.
func New(log *slog.Logger, store Store, registry *Registry, cfg Config) *Tracker {
	if !cfg.Mode.IsValid() {
		cfg.Mode = ModeBestEffort
	}
	if cfg.Observer == nil {
		cfg.Observer = nopObserver{}
	}
	return &Tracker{
		store:    store,
		registry: registry,
		mode:     cfg.Mode,
		observer: cfg.Observer,
		log:      log.With("component", "revision"),
		now:      func() time.Time { return time.Now().UTC() },
		pending:  make(map[pendingKey]snapshot),
	}
}

// Mode returns the persistence mode the tracker was built with.
func (t *Tracker) Mode() Mode { return t.mode }

// CaptureBefore snapshots the persisted state of rec before op is applied.
// It never fails: problems are logged and the after phase falls back to an
// empty before-state.
func (t *Tracker) CaptureBefore(ctx context.Context, op domain.Operation, rec Tracked) {
	model := rec.RevisionModel()
	cfg, ok := t.registry.lookup(model)
	if !ok {
		t.log.DebugContext(ctx, "model not tracked", slog.String("model", model))
		return
	}

	key := pendingKey{model: model, id: rec.RevisionKey()}
	snap := snapshot{revision: rec.RevisionNumber()}

	if op != domain.OperationCreate {
		fields, err := cfg.document(rec.RevisionFields())
		if err != nil {
			t.observer.CaptureFailed(model, StageBefore)
			t.log.WarnContext(ctx, "capture before-state",
				slog.String("model", model),
				slog.String("document_id", key.id.String()),
				slog.String("operation", op.String()),
				slog.String("error", err.Error()),
			)
			return
		}
		snap.fields = fields
	}

	t.mu.Lock()
	if _, exists := t.pending[key]; exists {
		t.log.WarnContext(ctx, "replacing stale before-state",
			slog.String("model", model),
			slog.String("document_id", key.id.String()),
		)
	}
	t.pending[key] = snap
	t.mu.Unlock()
}

// CaptureAfter diffs rec against the captured before-state, assigns the next
// revision number to rec and appends the revision to the store. The
// before-state is consumed whatever the outcome.
//
// An error is returned only in transactional mode when the store fails; the
// caller must then abort its write.
func (t *Tracker) CaptureAfter(ctx context.Context, op domain.Operation, rec Tracked) error {
	model := rec.RevisionModel()
	key := pendingKey{model: model, id: rec.RevisionKey()}
	prior, found := t.take(key)

	cfg, ok := t.registry.lookup(model)
	if !ok {
		return nil
	}

	logAttrs := []any{
		slog.String("model", model),
		slog.String("document_id", key.id.String()),
		slog.String("operation", op.String()),
	}

	before := map[string]any{}
	prevRevision := rec.RevisionNumber()
	if found {
		prevRevision = prior.revision
		if prior.fields != nil {
			before = prior.fields
		}
	} else {
		t.log.WarnContext(ctx, "before-state missing, diffing against empty document", logAttrs...)
	}
	if op == domain.OperationCreate {
		before = map[string]any{}
	}

	after := map[string]any{}
	if op != domain.OperationDestroy {
		fields, err := cfg.document(rec.RevisionFields())
		if err != nil {
			t.observer.CaptureFailed(model, StageAfter)
			t.log.WarnContext(ctx, "capture after-state", append(logAttrs, slog.String("error", err.Error()))...)
			return nil
		}
		after = fields
	}

	changes := Diff(before, after)
	if op == domain.OperationUpdate && len(changes) == 0 {
		t.log.DebugContext(ctx, "no tracked field changed", logAttrs...)
		return nil
	}

	next := prevRevision + 1
	now := t.now()
	rev := domain.Revision{
		ID:         uuid.New(),
		Model:      model,
		DocumentID: key.id,
		Operation:  op,
		Revision:   next,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if op != domain.OperationCreate {
		rev.Document = before
	}
	if userID, ok := ctxutil.ActorIDFromCtx(ctx); ok {
		rev.UserID = &userID
	}
	if requestID := ctxutil.RequestIDFromCtx(ctx); requestID != "" {
		rev.RequestID = &requestID
	}

	rows := make([]domain.RevisionChange, len(changes))
	for i, c := range changes {
		rows[i] = domain.RevisionChange{
			ID:         uuid.New(),
			RevisionID: rev.ID,
			Path:       c.Path,
			Document:   c.Diff.Old,
			Diff:       c.Diff,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	rec.SetRevisionNumber(next)
	if err := t.store.Append(ctx, rev, rows); err != nil {
		rec.SetRevisionNumber(prevRevision)
		t.observer.CaptureFailed(model, StagePersist)
		if t.mode == ModeTransactional {
			return fmt.Errorf("append revision %s %s: %w", model, key.id, err)
		}
		t.log.ErrorContext(ctx, "persist revision", append(logAttrs, slog.String("error", err.Error()))...)
		return nil
	}

	t.observer.RevisionRecorded(model, op)
	t.log.DebugContext(ctx, "revision recorded",
		append(logAttrs, slog.Int("revision", next), slog.Int("changes", len(rows)))...,
	)
	return nil
}

// Discard drops the before-state of rec, if any. Callers defer it right after
// CaptureBefore so aborted mutations do not leak snapshots.
func (t *Tracker) Discard(rec Tracked) {
	t.take(pendingKey{model: rec.RevisionModel(), id: rec.RevisionKey()})
}

// Pending returns the number of before-states awaiting their after phase.
func (t *Tracker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

func (t *Tracker) take(key pendingKey) (snapshot, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap, ok := t.pending[key]
	if ok {
		delete(t.pending, key)
	}
	return snap, ok
}

type nopObserver struct{}

func (nopObserver) RevisionRecorded(string, domain.Operation) {}
func (nopObserver) CaptureFailed(string, string)              {}
