package company

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

// GetCompany returns a company by id.
func (s *Service) GetCompany(ctx context.Context, id uuid.UUID) (domain.Company, error) {
	if id == uuid.Nil {
		return domain.Company{}, domain.NewValidationError("company_id", "required")
	}

	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return domain.Company{}, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// ListCompanies returns companies ordered by name.
func (s *Service) ListCompanies(ctx context.Context, input ListCompaniesInput) ([]domain.Company, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	companies, err := s.companies.List(ctx, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}
