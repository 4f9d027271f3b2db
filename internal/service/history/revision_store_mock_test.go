package history

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/placement-backend/internal/domain"
)

var _ revisionStore = &revisionStoreMock{}

type revisionStoreMock struct {
	ListRevisionsFunc       func(ctx context.Context, model string, documentID uuid.UUID) ([]domain.Revision, error)
	ListByModelFunc         func(ctx context.Context, model string, limit int, offset int) ([]domain.Revision, error)
	GetRevisionFunc         func(ctx context.Context, id uuid.UUID) (domain.Revision, error)
	ListChangesFunc         func(ctx context.Context, revisionID uuid.UUID) ([]domain.RevisionChange, error)
	ListDocumentChangesFunc func(ctx context.Context, model string, documentID uuid.UUID, upTo int) ([]domain.RevisionChange, error)

	calls struct {
		ListRevisions []struct {
			Ctx        context.Context
			Model      string
			DocumentID uuid.UUID
		}
		ListByModel []struct {
			Ctx    context.Context
			Model  string
			Limit  int
			Offset int
		}
		GetRevision []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListChanges []struct {
			Ctx        context.Context
			RevisionID uuid.UUID
		}
		ListDocumentChanges []struct {
			Ctx        context.Context
			Model      string
			DocumentID uuid.UUID
			UpTo       int
		}
	}
	lockListRevisions       sync.RWMutex
	lockListByModel         sync.RWMutex
	lockGetRevision         sync.RWMutex
	lockListChanges         sync.RWMutex
	lockListDocumentChanges sync.RWMutex
}

func (mock *revisionStoreMock) ListRevisions(ctx context.Context, model string, documentID uuid.UUID) ([]domain.Revision, error) {
	if mock.ListRevisionsFunc == nil {
		panic("revisionStoreMock.ListRevisionsFunc: method is nil but revisionStore.ListRevisions was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Model      string
		DocumentID uuid.UUID
	}{Ctx: ctx, Model: model, DocumentID: documentID}
	mock.lockListRevisions.Lock()
	mock.calls.ListRevisions = append(mock.calls.ListRevisions, callInfo)
	mock.lockListRevisions.Unlock()
	return mock.ListRevisionsFunc(ctx, model, documentID)
}

func (mock *revisionStoreMock) ListRevisionsCalls() []struct {
	Ctx        context.Context
	Model      string
	DocumentID uuid.UUID
} {
	mock.lockListRevisions.RLock()
	calls := mock.calls.ListRevisions
	mock.lockListRevisions.RUnlock()
	return calls
}

func (mock *revisionStoreMock) ListByModel(ctx context.Context, model string, limit int, offset int) ([]domain.Revision, error) {
	if mock.ListByModelFunc == nil {
		panic("revisionStoreMock.ListByModelFunc: method is nil but revisionStore.ListByModel was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Model  string
		Limit  int
		Offset int
	}{Ctx: ctx, Model: model, Limit: limit, Offset: offset}
	mock.lockListByModel.Lock()
	mock.calls.ListByModel = append(mock.calls.ListByModel, callInfo)
	mock.lockListByModel.Unlock()
	return mock.ListByModelFunc(ctx, model, limit, offset)
}

func (mock *revisionStoreMock) ListByModelCalls() []struct {
	Ctx    context.Context
	Model  string
	Limit  int
	Offset int
} {
	mock.lockListByModel.RLock()
	calls := mock.calls.ListByModel
	mock.lockListByModel.RUnlock()
	return calls
}

func (mock *revisionStoreMock) GetRevision(ctx context.Context, id uuid.UUID) (domain.Revision, error) {
	if mock.GetRevisionFunc == nil {
		panic("revisionStoreMock.GetRevisionFunc: method is nil but revisionStore.GetRevision was just called")
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

func (mock *revisionStoreMock) GetRevisionCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetRevision.RLock()
	calls := mock.calls.GetRevision
	mock.lockGetRevision.RUnlock()
	return calls
}

func (mock *revisionStoreMock) ListChanges(ctx context.Context, revisionID uuid.UUID) ([]domain.RevisionChange, error) {
	if mock.ListChangesFunc == nil {
		panic("revisionStoreMock.ListChangesFunc: method is nil but revisionStore.ListChanges was just called")
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

func (mock *revisionStoreMock) ListChangesCalls() []struct {
	Ctx        context.Context
	RevisionID uuid.UUID
} {
	mock.lockListChanges.RLock()
	calls := mock.calls.ListChanges
	mock.lockListChanges.RUnlock()
	return calls
}

func (mock *revisionStoreMock) ListDocumentChanges(ctx context.Context, model string, documentID uuid.UUID, upTo int) ([]domain.RevisionChange, error) {
	if mock.ListDocumentChangesFunc == nil {
		panic("revisionStoreMock.ListDocumentChangesFunc: method is nil but revisionStore.ListDocumentChanges was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Model      string
		DocumentID uuid.UUID
		UpTo       int
	}{Ctx: ctx, Model: model, DocumentID: documentID, UpTo: upTo}
	mock.lockListDocumentChanges.Lock()
	mock.calls.ListDocumentChanges = append(mock.calls.ListDocumentChanges, callInfo)
	mock.lockListDocumentChanges.Unlock()
	return mock.ListDocumentChangesFunc(ctx, model, documentID, upTo)
}

func (mock *revisionStoreMock) ListDocumentChangesCalls() []struct {
	Ctx        context.Context
	Model      string
	DocumentID uuid.UUID
	UpTo       int
} {
	mock.lockListDocumentChanges.RLock()
	calls := mock.calls.ListDocumentChanges
	mock.lockListDocumentChanges.RUnlock()
	return calls
}
