package opportunity

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

type opportunityRepo interface {
	Create(ctx context.Context, o domain.Opportunity) (domain.Opportunity, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Opportunity, error)
	Update(ctx context.Context, id uuid.UUID, p domain.OpportunityUpdateParams) (domain.Opportunity, error)
	Archive(ctx context.Context, id uuid.UUID) (domain.Opportunity, error)
	Restore(ctx context.Context, id uuid.UUID) (domain.Opportunity, error)
	Purge(ctx context.Context, id uuid.UUID, archivedBefore time.Time) error
	ListByCompany(ctx context.Context, companyID uuid.UUID, f domain.OpportunityFilter) ([]domain.Opportunity, error)
	ListArchivedBefore(ctx context.Context, threshold time.Time, limit int) ([]uuid.UUID, error)
}

type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Company, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxSkills        = 30
	MaxSkillLength   = 50
	DefaultListLimit = 50
	MaxListLimit     = 200

	// purgeBatchSize bounds how many archived opportunities one
	// PurgeArchivedBefore round loads.
	purgeBatchSize = 100
)

// Service provides opportunity management operations.
type Service struct {
	opportunities opportunityRepo
	companies     companyRepo
	tx            txManager
	log           *slog.Logger
}

// NewService creates a new Opportunity service.
func NewService(
	log *slog.Logger,
	opportunities opportunityRepo,
	companies companyRepo,
	tx txManager,
) *Service {
	return &Service{
		opportunities: opportunities,
		companies:     companies,
		tx:            tx,
		log:           log.With("service", "opportunity"),
	}
}

// normalizeSkills lowercases, trims and deduplicates skills, keeping the
// first occurrence order. A nil input stays nil.
func normalizeSkills(skills []string) []string {
	if skills == nil {
		return nil
	}
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func normalizeSalary(s *domain.Salary) *domain.Salary {
	if s == nil {
		return nil
	}
	return &domain.Salary{Min: s.Min, Max: s.Max, Currency: strings.ToUpper(strings.TrimSpace(s.Currency))}
}
