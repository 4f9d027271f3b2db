package company

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

var _ companyRepo = &companyRepoMock{}

type companyRepoMock struct {
	CreateFunc  func(ctx context.Context, c domain.Company) (domain.Company, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Company, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, p domain.CompanyUpdateParams) (domain.Company, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	ListFunc    func(ctx context.Context, limit, offset int) ([]domain.Company, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.Company
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   domain.CompanyUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *companyRepoMock) Create(ctx context.Context, c domain.Company) (domain.Company, error) {
	if mock.CreateFunc == nil {
		panic("companyRepoMock.CreateFunc: method is nil but companyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Company
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *companyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Company
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *companyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Company, error) {
	if mock.GetByIDFunc == nil {
		panic("companyRepoMock.GetByIDFunc: method is nil but companyRepo.GetByID was just called")
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

func (mock *companyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *companyRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.CompanyUpdateParams) (domain.Company, error) {
	if mock.UpdateFunc == nil {
		panic("companyRepoMock.UpdateFunc: method is nil but companyRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.CompanyUpdateParams
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *companyRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   domain.CompanyUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *companyRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("companyRepoMock.DeleteFunc: method is nil but companyRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *companyRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *companyRepoMock) List(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	if mock.ListFunc == nil {
		panic("companyRepoMock.ListFunc: method is nil but companyRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *companyRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
