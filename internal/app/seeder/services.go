// Package seeder loads demo companies and opportunities through the
// services, so every seeded record starts with a revision trail.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
	"github.com/heartmarshall/placement-backend/internal/service/company"
	"github.com/heartmarshall/placement-backend/internal/service/opportunity"
)

// CompanyCreator is the company service subset used by the pipeline.
type CompanyCreator interface {
	CreateCompany(ctx context.Context, input company.CreateCompanyInput) (domain.Company, error)
}

// OpportunityPublisher is the opportunity service subset used by the pipeline.
type OpportunityPublisher interface {
	CreateOpportunity(ctx context.Context, input opportunity.CreateOpportunityInput) (domain.Opportunity, error)
	ArchiveOpportunity(ctx context.Context, id uuid.UUID) (domain.Opportunity, error)
}
