package company

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ opportunityCounter = &opportunityCounterMock{}

type opportunityCounterMock struct {
	CountByCompanyFunc func(ctx context.Context, companyID uuid.UUID) (int, error)

	calls struct {
		CountByCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
	}
	lockCountByCompany sync.RWMutex
}

func (mock *opportunityCounterMock) CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error) {
	if mock.CountByCompanyFunc == nil {
		panic("opportunityCounterMock.CountByCompanyFunc: method is nil but opportunityCounter.CountByCompany was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{Ctx: ctx, CompanyID: companyID}
	mock.lockCountByCompany.Lock()
	mock.calls.CountByCompany = append(mock.calls.CountByCompany, callInfo)
	mock.lockCountByCompany.Unlock()
	return mock.CountByCompanyFunc(ctx, companyID)
}

func (mock *opportunityCounterMock) CountByCompanyCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	mock.lockCountByCompany.RLock()
	calls := mock.calls.CountByCompany
	mock.lockCountByCompany.RUnlock()
	return calls
}
