package testutil

import (
	"github.com/coder2754/Smart-AutoClicker/core"
	"github.com/coder2754/Smart-AutoClicker/observable"
)

// FailingScenarioStore wraps a core.ScenarioStore and injects errors into
// selected operations. Zero error fields pass calls through unchanged.
type FailingScenarioStore struct {
	Inner core.ScenarioStore

	AddScenarioErr        error
	TutorialScenarioIDErr error
	IsTutorialSucceedErr  error
	SetTutorialSuccessErr error
}

// TutorialSuccessList passes through to the wrapped store.
func (f *FailingScenarioStore) TutorialSuccessList() *observable.Value[[]core.TutorialSuccess] {
	return f.Inner.TutorialSuccessList()
}

// StartTutorialMode passes through to the wrapped store.
func (f *FailingScenarioStore) StartTutorialMode() { f.Inner.StartTutorialMode() }

// StopTutorialMode passes through to the wrapped store.
func (f *FailingScenarioStore) StopTutorialMode() { f.Inner.StopTutorialMode() }

// AddScenario fails with AddScenarioErr when set.
func (f *FailingScenarioStore) AddScenario(spec core.ScenarioSpec) (core.ScenarioID, error) {
	if f.AddScenarioErr != nil {
		return 0, f.AddScenarioErr
	}
	return f.Inner.AddScenario(spec)
}

// TutorialScenarioID fails with TutorialScenarioIDErr when set.
func (f *FailingScenarioStore) TutorialScenarioID(index int) (core.ScenarioID, bool, error) {
	if f.TutorialScenarioIDErr != nil {
		return 0, false, f.TutorialScenarioIDErr
	}
	return f.Inner.TutorialScenarioID(index)
}

// IsTutorialSucceed fails with IsTutorialSucceedErr when set.
func (f *FailingScenarioStore) IsTutorialSucceed(index int) (bool, error) {
	if f.IsTutorialSucceedErr != nil {
		return false, f.IsTutorialSucceedErr
	}
	return f.Inner.IsTutorialSucceed(index)
}

// SetTutorialSuccess fails with SetTutorialSuccessErr when set.
func (f *FailingScenarioStore) SetTutorialSuccess(index int, id core.ScenarioID, completed bool) error {
	if f.SetTutorialSuccessErr != nil {
		return f.SetTutorialSuccessErr
	}
	return f.Inner.SetTutorialSuccess(index, id, completed)
}
