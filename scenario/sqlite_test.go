package scenario

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coder2754/Smart-AutoClicker/core"
)

// Interface compliance (compile-time assertion)
var _ core.ScenarioStore = (*SQLiteStore)(nil)

func openTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tutorial.db")
	s, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestSQLiteAddScenarioRoundTrip(t *testing.T) {
	s, _ := openTestStore(t)

	id, err := s.AddScenario(core.ScenarioSpec{Name: "Tutorial", DetectionQuality: 600, EndConditionOr: true})
	require.NoError(t, err)
	require.NotZero(t, id)

	spec, ok, err := s.Scenario(id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Tutorial", spec.Name)
	assert.Equal(t, 600, spec.DetectionQuality)
	assert.True(t, spec.EndConditionOr)

	_, ok, err = s.Scenario(id + 100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteSuccessRecords(t *testing.T) {
	s, _ := openTestStore(t)

	id, err := s.AddScenario(core.ScenarioSpec{Name: "Tutorial"})
	require.NoError(t, err)

	succeeded, err := s.IsTutorialSucceed(0)
	require.NoError(t, err)
	assert.False(t, succeeded)

	require.NoError(t, s.SetTutorialSuccess(0, id, true))

	got, ok, err := s.TutorialScenarioID(0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, got)

	succeeded, err = s.IsTutorialSucceed(0)
	require.NoError(t, err)
	assert.True(t, succeeded)

	// Upsert replaces the record rather than duplicating it.
	require.NoError(t, s.SetTutorialSuccess(0, id, false))
	list := s.TutorialSuccessList().Get()
	require.Len(t, list, 1)
	assert.False(t, list[0].Completed)
}

func TestSQLiteSuccessListSurvivesReopen(t *testing.T) {
	s, path := openTestStore(t)

	id, err := s.AddScenario(core.ScenarioSpec{Name: "Tutorial"})
	require.NoError(t, err)
	require.NoError(t, s.SetTutorialSuccess(0, id, true))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	list := reopened.TutorialSuccessList().Get()
	require.Len(t, list, 1)
	assert.Equal(t, 0, list[0].TutorialIndex)
	assert.Equal(t, id, list[0].ScenarioID)
	assert.True(t, list[0].Completed)
}

func TestSQLiteTutorialModeIsVolatile(t *testing.T) {
	s, _ := openTestStore(t)
	s.StartTutorialMode()
	assert.True(t, s.IsTutorialModeActive())
	s.StopTutorialMode()
	assert.False(t, s.IsTutorialModeActive())
}
