package revision

import (
	"context"
	"sync"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

var _ Store = &storeMock{}

type storeMock struct {
	AppendFunc func(ctx context.Context, rev domain.Revision, changes []domain.RevisionChange) error

	calls struct {
		Append []struct {
			Ctx     context.Context
			Rev     domain.Revision
			Changes []domain.RevisionChange
		}
	}
	lockAppend sync.RWMutex
}

func (mock *storeMock) Append(ctx context.Context, rev domain.Revision, changes []domain.RevisionChange) error {
	if mock.AppendFunc == nil {
		panic("storeMock.AppendFunc: method is nil but Store.Append was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Rev     domain.Revision
		Changes []domain.RevisionChange
	}{Ctx: ctx, Rev: rev, Changes: changes}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, rev, changes)
}

func (mock *storeMock) AppendCalls() []struct {
	Ctx     context.Context
	Rev     domain.Revision
	Changes []domain.RevisionChange
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

var _ Observer = &observerMock{}

type observerMock struct {
	mu       sync.Mutex
	recorded []string
	failed   []string
}

func (o *observerMock) RevisionRecorded(model string, op domain.Operation) {
	o.mu.Lock()
	o.recorded = append(o.recorded, model+":"+op.String())
	o.mu.Unlock()
}

func (o *observerMock) CaptureFailed(model, stage string) {
	o.mu.Lock()
	o.failed = append(o.failed, model+":"+stage)
	o.mu.Unlock()
}
