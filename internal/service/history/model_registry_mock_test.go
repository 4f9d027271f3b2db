package history

import (
	"sync"
)

var _ modelRegistry = &modelRegistryMock{}

type modelRegistryMock struct {
	TrackedFunc func(model string) bool
	ModelsFunc  func() []string

	calls struct {
		Tracked []struct {
			Model string
		}
		Models []struct{}
	}
	lockTracked sync.RWMutex
	lockModels  sync.RWMutex
}

func (mock *modelRegistryMock) Tracked(model string) bool {
	if mock.TrackedFunc == nil {
		panic("modelRegistryMock.TrackedFunc: method is nil but modelRegistry.Tracked was just called")
	}
	callInfo := struct {
		Model string
	}{Model: model}
	mock.lockTracked.Lock()
	mock.calls.Tracked = append(mock.calls.Tracked, callInfo)
	mock.lockTracked.Unlock()
	return mock.TrackedFunc(model)
}

func (mock *modelRegistryMock) TrackedCalls() []struct {
	Model string
} {
	mock.lockTracked.RLock()
	calls := mock.calls.Tracked
	mock.lockTracked.RUnlock()
	return calls
}

func (mock *modelRegistryMock) Models() []string {
	if mock.ModelsFunc == nil {
		panic("modelRegistryMock.ModelsFunc: method is nil but modelRegistry.Models was just called")
	}
	callInfo := struct{}{}
	mock.lockModels.Lock()
	mock.calls.Models = append(mock.calls.Models, callInfo)
	mock.lockModels.Unlock()
	return mock.ModelsFunc()
}

func (mock *modelRegistryMock) ModelsCalls() []struct{} {
	mock.lockModels.RLock()
	calls := mock.calls.Models
	mock.lockModels.RUnlock()
	return calls
}
