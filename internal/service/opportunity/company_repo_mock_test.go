package opportunity

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

var _ companyRepo = &companyRepoMock{}

type companyRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Company, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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
