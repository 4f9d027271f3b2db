package company

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

// DeleteCompany physically deletes a company. A company that still has
// opportunities, archived ones included, cannot be deleted.
func (s *Service) DeleteCompany(ctx context.Context, input DeleteCompanyInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		count, countErr := s.opportunities.CountByCompany(txCtx, input.CompanyID)
		if countErr != nil {
			return fmt.Errorf("count opportunities: %w", countErr)
		}
		if count > 0 {
			return fmt.Errorf("company %s has %d opportunities: %w", input.CompanyID, count, domain.ErrConflict)
		}

		if deleteErr := s.companies.Delete(txCtx, input.CompanyID); deleteErr != nil {
			return fmt.Errorf("delete company: %w", deleteErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "company deleted",
		slog.String("company_id", input.CompanyID.String()),
	)

	return nil
}
