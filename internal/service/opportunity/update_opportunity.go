package opportunity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

// UpdateOpportunity updates an opportunity. Archived opportunities must be
// restored before they can be edited.
func (s *Service) UpdateOpportunity(ctx context.Context, input UpdateOpportunityInput) (domain.Opportunity, error) {
	if err := input.Validate(); err != nil {
		return domain.Opportunity{}, err
	}

	params := domain.OpportunityUpdateParams{
		Contract:    input.Contract,
		Salary:      normalizeSalary(input.Salary),
		ClearSalary: input.ClearSalary,
		Skills:      normalizeSkills(input.Skills),
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		params.Title = &title
	}
	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		params.Description = &desc
	}
	if input.Location != nil {
		loc := strings.TrimSpace(*input.Location)
		params.Location = &loc
	}

	var updated domain.Opportunity
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.opportunities.Update(txCtx, input.OpportunityID, params)
		if updateErr != nil {
			return fmt.Errorf("update opportunity: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return domain.Opportunity{}, err
	}

	s.log.InfoContext(ctx, "opportunity updated",
		slog.String("opportunity_id", input.OpportunityID.String()),
		slog.Int("revision", updated.Revision),
	)

	return updated, nil
}

// ArchiveOpportunity soft-deletes an opportunity.
func (s *Service) ArchiveOpportunity(ctx context.Context, id uuid.UUID) (domain.Opportunity, error) {
	return s.transition(ctx, id, "archive", s.opportunities.Archive)
}

// RestoreOpportunity reverts a soft delete.
func (s *Service) RestoreOpportunity(ctx context.Context, id uuid.UUID) (domain.Opportunity, error) {
	return s.transition(ctx, id, "restore", s.opportunities.Restore)
}

func (s *Service) transition(
	ctx context.Context,
	id uuid.UUID,
	action string,
	fn func(ctx context.Context, id uuid.UUID) (domain.Opportunity, error),
) (domain.Opportunity, error) {
	if id == uuid.Nil {
		return domain.Opportunity{}, domain.NewValidationError("opportunity_id", "required")
	}

	var out domain.Opportunity
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var fnErr error
		out, fnErr = fn(txCtx, id)
		if fnErr != nil {
			return fmt.Errorf("%s opportunity: %w", action, fnErr)
		}
		return nil
	})
	if err != nil {
		return domain.Opportunity{}, err
	}

	s.log.InfoContext(ctx, "opportunity "+action+"d",
		slog.String("opportunity_id", id.String()),
		slog.Int("revision", out.Revision),
	)

	return out, nil
}

// PurgeOpportunity physically removes an opportunity. Only archived
// opportunities can be purged; the repository checks it under the row lock.
func (s *Service) PurgeOpportunity(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("opportunity_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if purgeErr := s.opportunities.Purge(txCtx, id, time.Time{}); purgeErr != nil {
			return fmt.Errorf("purge opportunity: %w", purgeErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "opportunity purged",
		slog.String("opportunity_id", id.String()),
	)

	return nil
}
