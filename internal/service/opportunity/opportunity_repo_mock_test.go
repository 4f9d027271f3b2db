package opportunity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

var _ opportunityRepo = &opportunityRepoMock{}

type opportunityRepoMock struct {
	CreateFunc             func(ctx context.Context, o domain.Opportunity) (domain.Opportunity, error)
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (domain.Opportunity, error)
	UpdateFunc             func(ctx context.Context, id uuid.UUID, p domain.OpportunityUpdateParams) (domain.Opportunity, error)
	ArchiveFunc            func(ctx context.Context, id uuid.UUID) (domain.Opportunity, error)
	RestoreFunc            func(ctx context.Context, id uuid.UUID) (domain.Opportunity, error)
	PurgeFunc              func(ctx context.Context, id uuid.UUID, archivedBefore time.Time) error
	ListByCompanyFunc      func(ctx context.Context, companyID uuid.UUID, f domain.OpportunityFilter) ([]domain.Opportunity, error)
	ListArchivedBeforeFunc func(ctx context.Context, threshold time.Time, limit int) ([]uuid.UUID, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			O   domain.Opportunity
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   domain.OpportunityUpdateParams
		}
		Archive []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Restore []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Purge []struct {
			Ctx            context.Context
			ID             uuid.UUID
			ArchivedBefore time.Time
		}
		ListByCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
			F         domain.OpportunityFilter
		}
		ListArchivedBefore []struct {
			Ctx       context.Context
			Threshold time.Time
			Limit     int
		}
	}
	lockCreate             sync.RWMutex
	lockGetByID            sync.RWMutex
	lockUpdate             sync.RWMutex
	lockArchive            sync.RWMutex
	lockRestore            sync.RWMutex
	lockPurge              sync.RWMutex
	lockListByCompany      sync.RWMutex
	lockListArchivedBefore sync.RWMutex
}

func (mock *opportunityRepoMock) Create(ctx context.Context, o domain.Opportunity) (domain.Opportunity, error) {
	if mock.CreateFunc == nil {
		panic("opportunityRepoMock.CreateFunc: method is nil but opportunityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		O   domain.Opportunity
	}{Ctx: ctx, O: o}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, o)
}

func (mock *opportunityRepoMock) CreateCalls() []struct {
	Ctx context.Context
	O   domain.Opportunity
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *opportunityRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Opportunity, error) {
	if mock.GetByIDFunc == nil {
		panic("opportunityRepoMock.GetByIDFunc: method is nil but opportunityRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *opportunityRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *opportunityRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.OpportunityUpdateParams) (domain.Opportunity, error) {
	if mock.UpdateFunc == nil {
		panic("opportunityRepoMock.UpdateFunc: method is nil but opportunityRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.OpportunityUpdateParams
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *opportunityRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   domain.OpportunityUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *opportunityRepoMock) Archive(ctx context.Context, id uuid.UUID) (domain.Opportunity, error) {
	if mock.ArchiveFunc == nil {
		panic("opportunityRepoMock.ArchiveFunc: method is nil but opportunityRepo.Archive was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockArchive.Lock()
	mock.calls.Archive = append(mock.calls.Archive, callInfo)
	mock.lockArchive.Unlock()
	return mock.ArchiveFunc(ctx, id)
}

func (mock *opportunityRepoMock) ArchiveCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockArchive.RLock()
	calls := mock.calls.Archive
	mock.lockArchive.RUnlock()
	return calls
}

func (mock *opportunityRepoMock) Restore(ctx context.Context, id uuid.UUID) (domain.Opportunity, error) {
	if mock.RestoreFunc == nil {
		panic("opportunityRepoMock.RestoreFunc: method is nil but opportunityRepo.Restore was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, id)
}

func (mock *opportunityRepoMock) RestoreCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRestore.RLock()
	calls := mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}

func (mock *opportunityRepoMock) Purge(ctx context.Context, id uuid.UUID, archivedBefore time.Time) error {
	if mock.PurgeFunc == nil {
		panic("opportunityRepoMock.PurgeFunc: method is nil but opportunityRepo.Purge was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ID             uuid.UUID
		ArchivedBefore time.Time
	}{Ctx: ctx, ID: id, ArchivedBefore: archivedBefore}
	mock.lockPurge.Lock()
	mock.calls.Purge = append(mock.calls.Purge, callInfo)
	mock.lockPurge.Unlock()
	return mock.PurgeFunc(ctx, id, archivedBefore)
}

func (mock *opportunityRepoMock) PurgeCalls() []struct {
	Ctx            context.Context
	ID             uuid.UUID
	ArchivedBefore time.Time
} {
	mock.lockPurge.RLock()
	calls := mock.calls.Purge
	mock.lockPurge.RUnlock()
	return calls
}

func (mock *opportunityRepoMock) ListByCompany(ctx context.Context, companyID uuid.UUID, f domain.OpportunityFilter) ([]domain.Opportunity, error) {
	if mock.ListByCompanyFunc == nil {
		panic("opportunityRepoMock.ListByCompanyFunc: method is nil but opportunityRepo.ListByCompany was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
		F         domain.OpportunityFilter
	}{Ctx: ctx, CompanyID: companyID, F: f}
	mock.lockListByCompany.Lock()
	mock.calls.ListByCompany = append(mock.calls.ListByCompany, callInfo)
	mock.lockListByCompany.Unlock()
	return mock.ListByCompanyFunc(ctx, companyID, f)
}

func (mock *opportunityRepoMock) ListByCompanyCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
	F         domain.OpportunityFilter
} {
	mock.lockListByCompany.RLock()
	calls := mock.calls.ListByCompany
	mock.lockListByCompany.RUnlock()
	return calls
}

func (mock *opportunityRepoMock) ListArchivedBefore(ctx context.Context, threshold time.Time, limit int) ([]uuid.UUID, error) {
	if mock.ListArchivedBeforeFunc == nil {
		panic("opportunityRepoMock.ListArchivedBeforeFunc: method is nil but opportunityRepo.ListArchivedBefore was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Threshold time.Time
		Limit     int
	}{Ctx: ctx, Threshold: threshold, Limit: limit}
	mock.lockListArchivedBefore.Lock()
	mock.calls.ListArchivedBefore = append(mock.calls.ListArchivedBefore, callInfo)
	mock.lockListArchivedBefore.Unlock()
	return mock.ListArchivedBeforeFunc(ctx, threshold, limit)
}

func (mock *opportunityRepoMock) ListArchivedBeforeCalls() []struct {
	Ctx       context.Context
	Threshold time.Time
	Limit     int
} {
	mock.lockListArchivedBefore.RLock()
	calls := mock.calls.ListArchivedBefore
	mock.lockListArchivedBefore.RUnlock()
	return calls
}
