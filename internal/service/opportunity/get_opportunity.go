package opportunity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

// GetOpportunity returns an opportunity by id.
func (s *Service) GetOpportunity(ctx context.Context, id uuid.UUID) (domain.Opportunity, error) {
	if id == uuid.Nil {
		return domain.Opportunity{}, domain.NewValidationError("opportunity_id", "required")
	}

	o, err := s.opportunities.GetByID(ctx, id)
	if err != nil {
		return domain.Opportunity{}, fmt.Errorf("get opportunity: %w", err)
	}
	return o, nil
}

// ListOpportunities returns the opportunities of a company.
func (s *Service) ListOpportunities(ctx context.Context, input ListOpportunitiesInput) ([]domain.Opportunity, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	filter := domain.OpportunityFilter{
		Contract:        input.Contract,
		IncludeArchived: input.IncludeArchived,
		Limit:           limit,
		Offset:          input.Offset,
	}
	if input.Skill != nil {
		skills := normalizeSkills([]string{*input.Skill})
		if len(skills) == 1 {
			filter.Skill = &skills[0]
		}
	}

	out, err := s.opportunities.ListByCompany(ctx, input.CompanyID, filter)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	return out, nil
}
