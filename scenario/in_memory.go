// Package scenario houses concrete implementations of core.ScenarioStore. The
// interface itself (and the scenario domain types) live in the core package
// to centralize domain contracts. Keeping only implementations here prevents
// higher level packages (coordinator, engine) from depending on concrete
// storage.
//
// Add additional backends in sub-packages without changing any calling code;
// only the wiring layer needs to decide which implementation to instantiate.
package scenario

import (
	"sort"
	"sync"

	"github.com/coder2754/Smart-AutoClicker/core"
	"github.com/coder2754/Smart-AutoClicker/observable"
)

// InMemoryStore is a volatile ScenarioStore implementation storing scenarios
// and tutorial success records in process-local maps. It is safe for
// concurrent access and best suited for tests or ephemeral demo runs.
type InMemoryStore struct {
	mu           sync.Mutex
	nextID       core.ScenarioID
	scenarios    map[core.ScenarioID]core.ScenarioSpec
	successes    map[int]core.TutorialSuccess
	tutorialMode bool
	successList  *observable.Value[[]core.TutorialSuccess]
}

// NewInMemoryStore constructs an empty in-memory scenario store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		nextID:      1,
		scenarios:   map[core.ScenarioID]core.ScenarioSpec{},
		successes:   map[int]core.TutorialSuccess{},
		successList: observable.New[[]core.TutorialSuccess](nil),
	}
}

// TutorialSuccessList exposes the ordered success records as an observable
// state stream.
func (s *InMemoryStore) TutorialSuccessList() *observable.Value[[]core.TutorialSuccess] {
	return s.successList
}

// StartTutorialMode segregates normal scenario visibility.
func (s *InMemoryStore) StartTutorialMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tutorialMode = true
}

// StopTutorialMode restores normal scenario visibility.
func (s *InMemoryStore) StopTutorialMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tutorialMode = false
}

// IsTutorialModeActive reports whether tutorial mode is currently on.
func (s *InMemoryStore) IsTutorialModeActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tutorialMode
}

// AddScenario creates a scenario and returns its newly assigned id.
func (s *InMemoryStore) AddScenario(spec core.ScenarioSpec) (core.ScenarioID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.scenarios[id] = spec
	return id, nil
}

// Scenario returns the spec stored under the given id, for inspection in
// tests and demos.
func (s *InMemoryStore) Scenario(id core.ScenarioID) (core.ScenarioSpec, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	spec, ok := s.scenarios[id]
	return spec, ok
}

// TutorialScenarioID returns the scenario id recorded for the tutorial at the
// given index.
func (s *InMemoryStore) TutorialScenarioID(index int) (core.ScenarioID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.successes[index]
	if !ok {
		return 0, false, nil
	}
	return record.ScenarioID, true, nil
}

// IsTutorialSucceed reports whether a success is recorded for the index.
func (s *InMemoryStore) IsTutorialSucceed(index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.successes[index]
	return ok, nil
}

// SetTutorialSuccess records the outcome of a tutorial run and republishes
// the success list.
func (s *InMemoryStore) SetTutorialSuccess(index int, id core.ScenarioID, completed bool) error {
	s.mu.Lock()
	s.successes[index] = core.TutorialSuccess{TutorialIndex: index, ScenarioID: id, Completed: completed}
	list := s.successListLocked()
	s.mu.Unlock()
	s.successList.Set(list)
	return nil
}

// successListLocked snapshots the success records ordered by tutorial index;
// caller must hold the lock.
func (s *InMemoryStore) successListLocked() []core.TutorialSuccess {
	list := make([]core.TutorialSuccess, 0, len(s.successes))
	for _, record := range s.successes {
		list = append(list, record)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].TutorialIndex < list[j].TutorialIndex })
	return list
}
