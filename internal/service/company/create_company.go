package company

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

// CreateCompany creates a new company.
func (s *Service) CreateCompany(ctx context.Context, input CreateCompanyInput) (domain.Company, error) {
	if err := input.Validate(); err != nil {
		return domain.Company{}, err
	}

	c := domain.Company{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(input.Name),
		Sector:  strings.TrimSpace(input.Sector),
		Address: trimAddress(input.Address),
	}
	if w := trimOrNil(input.Website); w != nil && *w != "" {
		c.Website = w
	}
	if d := trimOrNil(input.Description); d != nil && *d != "" {
		c.Description = d
	}

	var created domain.Company
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.companies.Create(txCtx, c)
		if createErr != nil {
			return fmt.Errorf("create company: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return domain.Company{}, err
	}

	s.log.InfoContext(ctx, "company created",
		slog.String("company_id", created.ID.String()),
		slog.String("name", created.Name),
		slog.Int("revision", created.Revision),
	)

	return created, nil
}
