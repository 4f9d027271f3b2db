package company

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

type companyRepo interface {
	Create(ctx context.Context, c domain.Company) (domain.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Company, error)
	Update(ctx context.Context, id uuid.UUID, p domain.CompanyUpdateParams) (domain.Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]domain.Company, error)
}

type opportunityCounter interface {
	CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Service provides company management operations. Every mutation goes
// through the tracked repository, so each one leaves a revision behind.
type Service struct {
	companies     companyRepo
	opportunities opportunityCounter
	tx            txManager
	log           *slog.Logger
}

// NewService creates a new Company service.
func NewService(
	log *slog.Logger,
	companies companyRepo,
	opportunities opportunityCounter,
	tx txManager,
) *Service {
	return &Service{
		companies:     companies,
		opportunities: opportunities,
		tx:            tx,
		log:           log.With("service", "company"),
	}
}

// trimOrNil trims whitespace. Returns nil if the input is nil.
// An all-blank value becomes a pointer to "" so the field gets cleared.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

func trimAddress(a domain.Address) domain.Address {
	return domain.Address{
		Street:  strings.TrimSpace(a.Street),
		City:    strings.TrimSpace(a.City),
		ZipCode: strings.TrimSpace(a.ZipCode),
		Country: strings.ToUpper(strings.TrimSpace(a.Country)),
	}
}
