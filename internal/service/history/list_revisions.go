package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

// ListRevisionsInput identifies one tracked record.
type ListRevisionsInput struct {
	Model string
	ID    uuid.UUID
}

// ListRevisions returns the revisions of one record ordered by revision
// number ascending. A record with no history, or a model that was never
// tracked, yields an empty slice.
func (s *Service) ListRevisions(ctx context.Context, input ListRevisionsInput) ([]domain.Revision, error) {
	model, err := s.validateRecord(ctx, input.Model, input.ID)
	if err != nil {
		return nil, err
	}

	revs, err := s.store.ListRevisions(ctx, model, input.ID)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	return revs, nil
}

// Trail returns the revisions of one record together with their changes.
func (s *Service) Trail(ctx context.Context, input ListRevisionsInput) ([]domain.RevisionEntry, error) {
	revs, err := s.ListRevisions(ctx, input)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RevisionEntry, len(revs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(changeFetchConcurrency)

	for i, rev := range revs {
		entries[i].Revision = rev
		g.Go(func() error {
			changes, listErr := s.store.ListChanges(gctx, rev.ID)
			if listErr != nil {
				return fmt.Errorf("list changes of revision %d: %w", rev.Revision, listErr)
			}
			entries[i].Changes = changes
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListChanges returns the field changes of one revision ordered by path.
// An unknown revision yields an empty slice.
func (s *Service) ListChanges(ctx context.Context, revisionID uuid.UUID) ([]domain.RevisionChange, error) {
	if revisionID == uuid.Nil {
		return nil, domain.NewValidationError("revision_id", "required")
	}

	changes, err := s.store.ListChanges(ctx, revisionID)
	if err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}
	return changes, nil
}

// GetRevision returns one revision header by id.
func (s *Service) GetRevision(ctx context.Context, id uuid.UUID) (domain.Revision, error) {
	if id == uuid.Nil {
		return domain.Revision{}, domain.NewValidationError("revision_id", "required")
	}

	rev, err := s.store.GetRevision(ctx, id)
	if err != nil {
		return domain.Revision{}, fmt.Errorf("get revision: %w", err)
	}
	return rev, nil
}

// ListRecentInput selects the latest revisions of a model.
type ListRecentInput struct {
	Model  string
	Limit  int
	Offset int
}

// ListRecent returns the latest revisions across all records of a model,
// newest first.
func (s *Service) ListRecent(ctx context.Context, input ListRecentInput) ([]domain.Revision, error) {
	var errs []domain.FieldError
	model, errs := s.resolveModel(ctx, errs, input.Model)
	if input.Limit < 0 || input.Limit > s.cfg.MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", s.cfg.MaxLimit)})
	}
	if input.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultLimit
	}

	revs, err := s.store.ListByModel(ctx, model, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list recent revisions: %w", err)
	}
	return revs, nil
}

func (s *Service) validateRecord(ctx context.Context, name string, id uuid.UUID) (string, error) {
	var errs []domain.FieldError
	model, errs := s.resolveModel(ctx, errs, name)
	if id == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if len(errs) > 0 {
		return "", domain.NewValidationErrors(errs)
	}
	return model, nil
}
