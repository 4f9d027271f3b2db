package company

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

// UpdateCompany updates an existing company. Unchanged values record no
// revision.
func (s *Service) UpdateCompany(ctx context.Context, input UpdateCompanyInput) (domain.Company, error) {
	if err := input.Validate(); err != nil {
		return domain.Company{}, err
	}

	params := domain.CompanyUpdateParams{
		Website:     trimOrNil(input.Website),
		Description: trimOrNil(input.Description),
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
	}
	if input.Sector != nil {
		sector := strings.TrimSpace(*input.Sector)
		params.Sector = &sector
	}
	if input.Address != nil {
		addr := trimAddress(*input.Address)
		params.Address = &addr
	}

	var updated domain.Company
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.companies.Update(txCtx, input.CompanyID, params)
		if updateErr != nil {
			return fmt.Errorf("update company: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return domain.Company{}, err
	}

	s.log.InfoContext(ctx, "company updated",
		slog.String("company_id", input.CompanyID.String()),
		slog.Int("revision", updated.Revision),
	)

	return updated, nil
}
