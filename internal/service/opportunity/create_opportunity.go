package opportunity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

// CreateOpportunity publishes a new opportunity for an existing company.
func (s *Service) CreateOpportunity(ctx context.Context, input CreateOpportunityInput) (domain.Opportunity, error) {
	if err := input.Validate(); err != nil {
		return domain.Opportunity{}, err
	}

	o := domain.Opportunity{
		ID:          uuid.New(),
		CompanyID:   input.CompanyID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Contract:    input.Contract,
		Location:    strings.TrimSpace(input.Location),
		Salary:      normalizeSalary(input.Salary),
		Skills:      normalizeSkills(input.Skills),
	}

	var created domain.Opportunity
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.companies.GetByID(txCtx, input.CompanyID); err != nil {
			return fmt.Errorf("get company: %w", err)
		}

		var createErr error
		created, createErr = s.opportunities.Create(txCtx, o)
		if createErr != nil {
			return fmt.Errorf("create opportunity: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return domain.Opportunity{}, err
	}

	s.log.InfoContext(ctx, "opportunity created",
		slog.String("opportunity_id", created.ID.String()),
		slog.String("company_id", created.CompanyID.String()),
		slog.String("contract", created.Contract.String()),
	)

	return created, nil
}
