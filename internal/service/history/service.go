package history

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/inflection"

	"github.com/heartmarshall/placement-backend/internal/config"
	"github.com/heartmarshall/placement-backend/internal/domain"
)

type revisionStore interface {
	ListRevisions(ctx context.Context, model string, documentID uuid.UUID) ([]domain.Revision, error)
	ListByModel(ctx context.Context, model string, limit, offset int) ([]domain.Revision, error)
	GetRevision(ctx context.Context, id uuid.UUID) (domain.Revision, error)
	ListChanges(ctx context.Context, revisionID uuid.UUID) ([]domain.RevisionChange, error)
	ListDocumentChanges(ctx context.Context, model string, documentID uuid.UUID, upTo int) ([]domain.RevisionChange, error)
}

type modelRegistry interface {
	Tracked(model string) bool
	Models() []string
}

// changeFetchConcurrency bounds the parallel ListChanges calls of Trail.
const changeFetchConcurrency = 4

// Service exposes the revision trail of tracked records.
type Service struct {
	store    revisionStore
	registry modelRegistry
	cfg      config.HistoryConfig
	log      *slog.Logger
}

// NewService creates a new History service.
func NewService(
	log *slog.Logger,
	store revisionStore,
	registry modelRegistry,
	cfg config.HistoryConfig,
) *Service {
	return &Service{
		store:    store,
		registry: registry,
		cfg:      cfg,
		log:      log.With("service", "history"),
	}
}

// Models returns the names of the tracked models.
func (s *Service) Models() []string {
	return s.registry.Models()
}

// NormalizeModel maps a user-supplied model name ("Companies", "company")
// to its registered singular form.
func NormalizeModel(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	return inflection.Singular(name)
}

// resolveModel normalises name and appends a field error when it is empty.
// Models missing from the registry are still read: their stored history
// stays available after a model stops being tracked, and a model that never
// had history simply yields nothing.
func (s *Service) resolveModel(ctx context.Context, errs []domain.FieldError, name string) (string, []domain.FieldError) {
	model := NormalizeModel(name)
	if model == "" {
		return "", append(errs, domain.FieldError{Field: "model", Message: "required"})
	}
	if !s.registry.Tracked(model) {
		s.log.DebugContext(ctx, "reading history of untracked model", slog.String("model", model))
	}
	return model, errs
}
