package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coder2754/Smart-AutoClicker/core"
)

// Interface compliance (compile-time assertion)
var _ core.ScenarioStore = (*InMemoryStore)(nil)

func TestInMemoryAddScenarioAssignsIncreasingIDs(t *testing.T) {
	s := NewInMemoryStore()

	first, err := s.AddScenario(core.ScenarioSpec{Name: "Tutorial"})
	require.NoError(t, err)
	second, err := s.AddScenario(core.ScenarioSpec{Name: "Tutorial"})
	require.NoError(t, err)

	assert.NotZero(t, first)
	assert.Greater(t, second, first)

	spec, ok := s.Scenario(first)
	require.True(t, ok)
	assert.Equal(t, "Tutorial", spec.Name)
}

func TestInMemoryTutorialMode(t *testing.T) {
	s := NewInMemoryStore()
	assert.False(t, s.IsTutorialModeActive())
	s.StartTutorialMode()
	assert.True(t, s.IsTutorialModeActive())
	s.StopTutorialMode()
	assert.False(t, s.IsTutorialModeActive())
}

func TestInMemorySuccessRecords(t *testing.T) {
	s := NewInMemoryStore()

	_, ok, err := s.TutorialScenarioID(0)
	require.NoError(t, err)
	assert.False(t, ok)

	succeeded, err := s.IsTutorialSucceed(0)
	require.NoError(t, err)
	assert.False(t, succeeded)

	require.NoError(t, s.SetTutorialSuccess(0, 42, true))

	id, ok, err := s.TutorialScenarioID(0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, core.ScenarioID(42), id)

	succeeded, err = s.IsTutorialSucceed(0)
	require.NoError(t, err)
	assert.True(t, succeeded)
}

func TestInMemorySuccessListPublishedOrdered(t *testing.T) {
	s := NewInMemoryStore()

	require.NoError(t, s.SetTutorialSuccess(1, 2, false))
	require.NoError(t, s.SetTutorialSuccess(0, 1, true))

	list := s.TutorialSuccessList().Get()
	require.Len(t, list, 2)
	assert.Equal(t, 0, list[0].TutorialIndex)
	assert.Equal(t, 1, list[1].TutorialIndex)
	assert.True(t, list[0].Completed)
	assert.False(t, list[1].Completed)
}
