package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
	"github.com/heartmarshall/placement-backend/internal/service/history"
)

var _ historyService = &historyServiceMock{}

type historyServiceMock struct {
	ModelsFunc        func() []string
	ListRevisionsFunc func(ctx context.Context, input history.ListRevisionsInput) ([]domain.Revision, error)
	TrailFunc         func(ctx context.Context, input history.ListRevisionsInput) ([]domain.RevisionEntry, error)
	ListRecentFunc    func(ctx context.Context, input history.ListRecentInput) ([]domain.Revision, error)
	GetRevisionFunc   func(ctx context.Context, id uuid.UUID) (domain.Revision, error)
	ListChangesFunc   func(ctx context.Context, revisionID uuid.UUID) ([]domain.RevisionChange, error)
	ReconstructFunc   func(ctx context.Context, input history.ReconstructInput) (domain.Snapshot, error)

	calls struct {
		Models        []struct{}
		ListRevisions []struct {
			Ctx   context.Context
			Input history.ListRevisionsInput
		}
		Trail []struct {
			Ctx   context.Context
			Input history.ListRevisionsInput
		}
		ListRecent []struct {
			Ctx   context.Context
			Input history.ListRecentInput
		}
		GetRevision []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListChanges []struct {
			Ctx        context.Context
			RevisionID uuid.UUID
		}
		Reconstruct []struct {
			Ctx   context.Context
			Input history.ReconstructInput
		}
	}
	lockModels        sync.RWMutex
	lockListRevisions sync.RWMutex
	lockTrail         sync.RWMutex
	lockListRecent    sync.RWMutex
	lockGetRevision   sync.RWMutex
	lockListChanges   sync.RWMutex
	lockReconstruct   sync.RWMutex
}

func (mock *historyServiceMock) Models() []string {
	if mock.ModelsFunc == nil {
		panic("historyServiceMock.ModelsFunc: method is nil but historyService.Models was just called")
	}
	callInfo := struct{}{}
	mock.lockModels.Lock()
	mock.calls.Models = append(mock.calls.Models, callInfo)
	mock.lockModels.Unlock()
	return mock.ModelsFunc()
}

func (mock *historyServiceMock) ModelsCalls() []struct{} {
	mock.lockModels.RLock()
	calls := mock.calls.Models
	mock.lockModels.RUnlock()
	return calls
}

func (mock *historyServiceMock) ListRevisions(ctx context.Context, input history.ListRevisionsInput) ([]domain.Revision, error) {
	if mock.ListRevisionsFunc == nil {
		panic("historyServiceMock.ListRevisionsFunc: method is nil but historyService.ListRevisions was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input history.ListRevisionsInput
	}{Ctx: ctx, Input: input}
	mock.lockListRevisions.Lock()
	mock.calls.ListRevisions = append(mock.calls.ListRevisions, callInfo)
	mock.lockListRevisions.Unlock()
	return mock.ListRevisionsFunc(ctx, input)
}

func (mock *historyServiceMock) ListRevisionsCalls() []struct {
	Ctx   context.Context
	Input history.ListRevisionsInput
} {
	mock.lockListRevisions.RLock()
	calls := mock.calls.ListRevisions
	mock.lockListRevisions.RUnlock()
	return calls
}

func (mock *historyServiceMock) Trail(ctx context.Context, input history.ListRevisionsInput) ([]domain.RevisionEntry, error) {
	if mock.TrailFunc == nil {
		panic("historyServiceMock.TrailFunc: method is nil but historyService.Trail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input history.ListRevisionsInput
	}{Ctx: ctx, Input: input}
	mock.lockTrail.Lock()
	mock.calls.Trail = append(mock.calls.Trail, callInfo)
	mock.lockTrail.Unlock()
	return mock.TrailFunc(ctx, input)
}

func (mock *historyServiceMock) TrailCalls() []struct {
	Ctx   context.Context
	Input history.ListRevisionsInput
} {
	mock.lockTrail.RLock()
	calls := mock.calls.Trail
	mock.lockTrail.RUnlock()
	return calls
}

func (mock *historyServiceMock) ListRecent(ctx context.Context, input history.ListRecentInput) ([]domain.Revision, error) {
	if mock.ListRecentFunc == nil {
		panic("historyServiceMock.ListRecentFunc: method is nil but historyService.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input history.ListRecentInput
	}{Ctx: ctx, Input: input}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, input)
}

func (mock *historyServiceMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Input history.ListRecentInput
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *historyServiceMock) GetRevision(ctx context.Context, id uuid.UUID) (domain.Revision, error) {
	if mock.GetRevisionFunc == nil {
		panic("historyServiceMock.GetRevisionFunc: method is nil but historyService.GetRevision was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetRevision.Lock()
	mock.calls.GetRevision = append(mock.calls.GetRevision, callInfo)
	mock.lockGetRevision.Unlock()
	return mock.GetRevisionFunc(ctx, id)
}

func (mock *historyServiceMock) GetRevisionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetRevision.RLock()
	calls := mock.calls.GetRevision
	mock.lockGetRevision.RUnlock()
	return calls
}

func (mock *historyServiceMock) ListChanges(ctx context.Context, revisionID uuid.UUID) ([]domain.RevisionChange, error) {
	if mock.ListChangesFunc == nil {
		panic("historyServiceMock.ListChangesFunc: method is nil but historyService.ListChanges was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		RevisionID uuid.UUID
	}{Ctx: ctx, RevisionID: revisionID}
	mock.lockListChanges.Lock()
	mock.calls.ListChanges = append(mock.calls.ListChanges, callInfo)
	mock.lockListChanges.Unlock()
	return mock.ListChangesFunc(ctx, revisionID)
}

func (mock *historyServiceMock) ListChangesCalls() []struct {
	Ctx        context.Context
	RevisionID uuid.UUID
} {
	mock.lockListChanges.RLock()
	calls := mock.calls.ListChanges
	mock.lockListChanges.RUnlock()
	return calls
}

func (mock *historyServiceMock) Reconstruct(ctx context.Context, input history.ReconstructInput) (domain.Snapshot, error) {
	if mock.ReconstructFunc == nil {
		panic("historyServiceMock.ReconstructFunc: method is nil but historyService.Reconstruct was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input history.ReconstructInput
	}{Ctx: ctx, Input: input}
	mock.lockReconstruct.Lock()
	mock.calls.Reconstruct = append(mock.calls.Reconstruct, callInfo)
	mock.lockReconstruct.Unlock()
	return mock.ReconstructFunc(ctx, input)
}

func (mock *historyServiceMock) ReconstructCalls() []struct {
	Ctx   context.Context
	Input history.ReconstructInput
} {
	mock.lockReconstruct.RLock()
	calls := mock.calls.Reconstruct
	mock.lockReconstruct.RUnlock()
	return calls
}
