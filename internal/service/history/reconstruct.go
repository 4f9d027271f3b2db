package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
	"github.com/heartmarshall/placement-backend/internal/revision"
)

// ReconstructInput selects one record and the revision to rebuild.
// Revision 0 means the latest one.
type ReconstructInput struct {
	Model    string
	ID       uuid.UUID
	Revision int
}

// Reconstruct rebuilds the tracked fields of a record as they were right
// after the given revision by replaying every diff from the empty document.
func (s *Service) Reconstruct(ctx context.Context, input ReconstructInput) (domain.Snapshot, error) {
	model, err := s.validateRecord(ctx, input.Model, input.ID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if input.Revision < 0 {
		return domain.Snapshot{}, domain.NewValidationError("revision", "must be >= 0")
	}

	revs, err := s.store.ListRevisions(ctx, model, input.ID)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("list revisions: %w", err)
	}
	if len(revs) == 0 {
		return domain.Snapshot{}, fmt.Errorf("%s %s has no history: %w", model, input.ID, domain.ErrNotFound)
	}

	target, ok := findRevision(revs, input.Revision)
	if !ok {
		return domain.Snapshot{}, fmt.Errorf("%s %s revision %d: %w", model, input.ID, input.Revision, domain.ErrNotFound)
	}

	changes, err := s.store.ListDocumentChanges(ctx, model, input.ID, target.Revision)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("list document changes: %w", err)
	}

	return domain.Snapshot{
		Model:      model,
		DocumentID: input.ID,
		Revision:   target.Revision,
		Operation:  target.Operation,
		Exists:     target.Operation != domain.OperationDestroy,
		Fields:     revision.Apply(map[string]any{}, toFieldChanges(changes)),
		RecordedAt: target.CreatedAt,
	}, nil
}

// findRevision returns the revision numbered n, or the last one when n is 0.
// revs must be ordered ascending.
func findRevision(revs []domain.Revision, n int) (domain.Revision, bool) {
	if n == 0 {
		return revs[len(revs)-1], true
	}
	for _, r := range revs {
		if r.Revision == n {
			return r, true
		}
	}
	return domain.Revision{}, false
}

func toFieldChanges(changes []domain.RevisionChange) []domain.FieldChange {
	out := make([]domain.FieldChange, len(changes))
	for i, c := range changes {
		out[i] = domain.FieldChange{Path: c.Path, Diff: c.Diff}
	}
	return out
}
