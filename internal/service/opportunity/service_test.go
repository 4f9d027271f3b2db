package opportunity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

//go:generate moq -out opportunity_repo_mock_test.go -pkg opportunity . opportunityRepo
//go:generate moq -out company_repo_mock_test.go -pkg opportunity . companyRepo
//go:generate moq -out tx_manager_mock_test.go -pkg opportunity . txManager

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func newTestService(opps opportunityRepo, companies companyRepo) *Service {
	tx := &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
	return NewService(slog.New(slog.DiscardHandler), opps, companies, tx)
}

func existingCompany() *companyRepoMock {
	return &companyRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.Company, error) {
			return domain.Company{ID: id, Name: "Acme"}, nil
		},
	}
}

func ptr[T any](v T) *T { return &v }

var errBoom = errors.New("boom")

func validCreateInput() CreateOpportunityInput {
	return CreateOpportunityInput{
		CompanyID: uuid.New(),
		Title:     " Go developer ",
		Contract:  domain.ContractPermanent,
		Location:  "Lyon",
		Salary:    &domain.Salary{Min: 40000, Max: 50000, Currency: "eur"},
		Skills:    []string{" Go", "go", "PostgreSQL", ""},
	}
}

// ---------------------------------------------------------------------------
// CreateOpportunity
// ---------------------------------------------------------------------------

func TestService_CreateOpportunity_NormalizesInput(t *testing.T) {
	t.Parallel()

	opps := &opportunityRepoMock{
		CreateFunc: func(ctx context.Context, o domain.Opportunity) (domain.Opportunity, error) {
			o.Revision = 1
			return o, nil
		},
	}
	svc := newTestService(opps, existingCompany())

	got, err := svc.CreateOpportunity(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, "Go developer", got.Title)
	assert.Equal(t, []string{"go", "postgresql"}, got.Skills)
	require.NotNil(t, got.Salary)
	assert.Equal(t, "EUR", got.Salary.Currency)
	assert.Equal(t, 1, got.Revision)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestService_CreateOpportunity_UnknownCompany(t *testing.T) {
	t.Parallel()

	opps := &opportunityRepoMock{}
	companies := &companyRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.Company, error) {
			return domain.Company{}, domain.ErrNotFound
		},
	}
	svc := newTestService(opps, companies)

	_, err := svc.CreateOpportunity(context.Background(), validCreateInput())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, opps.CreateCalls())
}

func TestService_CreateOpportunity_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(i *CreateOpportunityInput)
		wantField string
	}{
		{"missing company", func(i *CreateOpportunityInput) { i.CompanyID = uuid.Nil }, "company_id"},
		{"empty title", func(i *CreateOpportunityInput) { i.Title = "  " }, "title"},
		{"bad contract", func(i *CreateOpportunityInput) { i.Contract = "gig" }, "contract"},
		{"inverted salary", func(i *CreateOpportunityInput) { i.Salary = &domain.Salary{Min: 10, Max: 5, Currency: "EUR"} }, "salary"},
		{"bad currency", func(i *CreateOpportunityInput) { i.Salary = &domain.Salary{Min: 1, Max: 2, Currency: "EURO"} }, "salary.currency"},
		{"too many skills", func(i *CreateOpportunityInput) { i.Skills = make([]string, MaxSkills+1) }, "skills"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := validCreateInput()
			tt.mutate(&input)

			svc := newTestService(&opportunityRepoMock{}, &companyRepoMock{})
			_, err := svc.CreateOpportunity(context.Background(), input)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Errors[0].Field)
		})
	}
}

// ---------------------------------------------------------------------------
// UpdateOpportunity
// ---------------------------------------------------------------------------

func TestService_UpdateOpportunity_Success(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	opps := &opportunityRepoMock{
		UpdateFunc: func(ctx context.Context, gotID uuid.UUID, p domain.OpportunityUpdateParams) (domain.Opportunity, error) {
			return domain.Opportunity{ID: gotID, Title: *p.Title, Skills: p.Skills, Revision: 2}, nil
		},
	}
	svc := newTestService(opps, nil)

	got, err := svc.UpdateOpportunity(context.Background(), UpdateOpportunityInput{
		OpportunityID: id,
		Title:         ptr(" Senior Go developer "),
		Skills:        []string{"Go", "Kubernetes"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Go developer", got.Title)
	assert.Equal(t, []string{"go", "kubernetes"}, got.Skills)
	assert.Equal(t, 2, got.Revision)
}

func TestService_UpdateOpportunity_Archived_Conflict(t *testing.T) {
	t.Parallel()

	opps := &opportunityRepoMock{
		UpdateFunc: func(ctx context.Context, id uuid.UUID, p domain.OpportunityUpdateParams) (domain.Opportunity, error) {
			return domain.Opportunity{}, fmt.Errorf("opportunity %s is archived: %w", id, domain.ErrConflict)
		},
	}
	svc := newTestService(opps, nil)

	_, err := svc.UpdateOpportunity(context.Background(), UpdateOpportunityInput{
		OpportunityID: uuid.New(),
		Location:      ptr("Paris"),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, opps.GetByIDCalls(), "archive state must come from the locked row, not a separate read")
}

func TestService_UpdateOpportunity_SetAndClearSalary(t *testing.T) {
	t.Parallel()

	svc := newTestService(&opportunityRepoMock{}, nil)
	_, err := svc.UpdateOpportunity(context.Background(), UpdateOpportunityInput{
		OpportunityID: uuid.New(),
		Salary:        &domain.Salary{Min: 1, Max: 2, Currency: "EUR"},
		ClearSalary:   true,
	})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "salary", ve.Errors[0].Field)
}

// ---------------------------------------------------------------------------
// Archive / Restore / Purge
// ---------------------------------------------------------------------------

func TestService_ArchiveOpportunity(t *testing.T) {
	t.Parallel()

	now := time.Now()
	opps := &opportunityRepoMock{
		ArchiveFunc: func(ctx context.Context, id uuid.UUID) (domain.Opportunity, error) {
			return domain.Opportunity{ID: id, DeletedAt: &now, Revision: 2}, nil
		},
	}
	svc := newTestService(opps, nil)

	got, err := svc.ArchiveOpportunity(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, got.IsArchived())
	assert.Len(t, opps.ArchiveCalls(), 1)

	_, err = svc.ArchiveOpportunity(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_RestoreOpportunity(t *testing.T) {
	t.Parallel()

	opps := &opportunityRepoMock{
		RestoreFunc: func(ctx context.Context, id uuid.UUID) (domain.Opportunity, error) {
			return domain.Opportunity{ID: id, Revision: 3}, nil
		},
	}
	svc := newTestService(opps, nil)

	got, err := svc.RestoreOpportunity(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, got.IsArchived())
}

func TestService_PurgeOpportunity_RequiresArchive(t *testing.T) {
	t.Parallel()

	opps := &opportunityRepoMock{
		PurgeFunc: func(ctx context.Context, id uuid.UUID, archivedBefore time.Time) error {
			return fmt.Errorf("opportunity %s is not archived: %w", id, domain.ErrConflict)
		},
	}
	svc := newTestService(opps, nil)

	err := svc.PurgeOpportunity(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, opps.GetByIDCalls())
}

func TestService_PurgeOpportunity_Success(t *testing.T) {
	t.Parallel()

	opps := &opportunityRepoMock{
		PurgeFunc: func(ctx context.Context, id uuid.UUID, archivedBefore time.Time) error {
			return nil
		},
	}
	svc := newTestService(opps, nil)

	require.NoError(t, svc.PurgeOpportunity(context.Background(), uuid.New()))
	require.Len(t, opps.PurgeCalls(), 1)
	assert.True(t, opps.PurgeCalls()[0].ArchivedBefore.IsZero())
}

// ---------------------------------------------------------------------------
// ListOpportunities
// ---------------------------------------------------------------------------

func TestService_ListOpportunities_BuildsFilter(t *testing.T) {
	t.Parallel()

	companyID := uuid.New()
	contract := domain.ContractInternship
	opps := &opportunityRepoMock{
		ListByCompanyFunc: func(ctx context.Context, id uuid.UUID, f domain.OpportunityFilter) ([]domain.Opportunity, error) {
			return []domain.Opportunity{}, nil
		},
	}
	svc := newTestService(opps, nil)

	_, err := svc.ListOpportunities(context.Background(), ListOpportunitiesInput{
		CompanyID: companyID,
		Contract:  &contract,
		Skill:     ptr(" Go "),
	})
	require.NoError(t, err)

	calls := opps.ListByCompanyCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, companyID, calls[0].CompanyID)
	assert.Equal(t, DefaultListLimit, calls[0].F.Limit)
	require.NotNil(t, calls[0].F.Skill)
	assert.Equal(t, "go", *calls[0].F.Skill)
	assert.False(t, calls[0].F.IncludeArchived)
}

func TestService_ListOpportunities_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(&opportunityRepoMock{}, nil)
	_, err := svc.ListOpportunities(context.Background(), ListOpportunitiesInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---------------------------------------------------------------------------
// PurgeArchivedBefore
// ---------------------------------------------------------------------------

func TestService_PurgeArchivedBefore_Batches(t *testing.T) {
	t.Parallel()

	remaining := make([]uuid.UUID, purgeBatchSize+3)
	for i := range remaining {
		remaining[i] = uuid.New()
	}

	opps := &opportunityRepoMock{}
	opps.ListArchivedBeforeFunc = func(ctx context.Context, threshold time.Time, limit int) ([]uuid.UUID, error) {
		n := min(limit, len(remaining))
		return append([]uuid.UUID(nil), remaining[:n]...), nil
	}
	opps.PurgeFunc = func(ctx context.Context, id uuid.UUID, archivedBefore time.Time) error {
		remaining = remaining[1:]
		return nil
	}
	svc := newTestService(opps, nil)

	threshold := time.Now().AddDate(0, 0, -90)
	n, err := svc.PurgeArchivedBefore(context.Background(), threshold)
	require.NoError(t, err)

	assert.Equal(t, purgeBatchSize+3, n)
	assert.Len(t, opps.PurgeCalls(), purgeBatchSize+3)
	assert.Len(t, opps.ListArchivedBeforeCalls(), 2)
	assert.Equal(t, threshold, opps.ListArchivedBeforeCalls()[0].Threshold)
	assert.Equal(t, threshold, opps.PurgeCalls()[0].ArchivedBefore)
}

func TestService_PurgeArchivedBefore_StopsOnError(t *testing.T) {
	t.Parallel()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	opps := &opportunityRepoMock{
		ListArchivedBeforeFunc: func(ctx context.Context, threshold time.Time, limit int) ([]uuid.UUID, error) {
			return ids, nil
		},
		PurgeFunc: func(ctx context.Context, id uuid.UUID, archivedBefore time.Time) error {
			if id == ids[1] {
				return errBoom
			}
			return nil
		},
	}
	svc := newTestService(opps, nil)

	n, err := svc.PurgeArchivedBefore(context.Background(), time.Now())
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, n)
}

func TestService_PurgeArchivedBefore_SkipsRestored(t *testing.T) {
	t.Parallel()

	restored, archived := uuid.New(), uuid.New()
	listed := false
	opps := &opportunityRepoMock{
		ListArchivedBeforeFunc: func(ctx context.Context, threshold time.Time, limit int) ([]uuid.UUID, error) {
			if listed {
				return nil, nil
			}
			listed = true
			return []uuid.UUID{restored, archived}, nil
		},
		// restored was brought back between the listing and its purge.
		PurgeFunc: func(ctx context.Context, id uuid.UUID, archivedBefore time.Time) error {
			if id == restored {
				return fmt.Errorf("opportunity %s is not archived: %w", id, domain.ErrConflict)
			}
			return nil
		},
	}
	svc := newTestService(opps, nil)

	n, err := svc.PurgeArchivedBefore(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, opps.PurgeCalls(), 2)
	assert.Empty(t, opps.GetByIDCalls())
}

func TestService_PurgeArchivedBefore_Nothing(t *testing.T) {
	t.Parallel()

	opps := &opportunityRepoMock{
		ListArchivedBeforeFunc: func(ctx context.Context, threshold time.Time, limit int) ([]uuid.UUID, error) {
			return nil, nil
		},
	}
	svc := newTestService(opps, nil)

	n, err := svc.PurgeArchivedBefore(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, opps.PurgeCalls())
}
