package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coder2754/Smart-AutoClicker/content"
	"github.com/coder2754/Smart-AutoClicker/core"
)

// Interface compliance (compile-time assertion)
var _ core.SessionEngine = (*Engine)(nil)

func tutorialData(t *testing.T, index int) *core.TutorialData {
	t.Helper()
	data, ok := content.Default().TutorialData(index)
	require.True(t, ok)
	return data
}

func TestStartPublishesFirstStep(t *testing.T) {
	e := New()
	assert.False(t, e.IsStarted())
	assert.Nil(t, e.CurrentStep().Get())

	e.StartTutorial(tutorialData(t, 0))

	assert.True(t, e.IsStarted())
	step := e.CurrentStep().Get()
	require.NotNil(t, step)
	assert.Equal(t, 0, step.Index)
	require.NotNil(t, e.Tutorial().Get())
	assert.Equal(t, 0, e.Tutorial().Get().Index)
}

func TestNextStepProgressionReachesEnd(t *testing.T) {
	e := New()
	data := tutorialData(t, 0)
	e.StartTutorial(data)

	for i := 1; i < len(data.Steps)-1; i++ {
		assert.False(t, e.NextStep(), "step %d is not the end", i)
	}
	assert.True(t, e.NextStep(), "final advancement signals completion")

	step := e.CurrentStep().Get()
	require.NotNil(t, step)
	assert.Equal(t, len(data.Steps)-1, step.Index)

	// Staying on the final step keeps signaling completion.
	assert.True(t, e.NextStep())
}

func TestSkipNeverSignalsCompletion(t *testing.T) {
	e := New()
	data := tutorialData(t, 0)
	e.StartTutorial(data)

	e.SkipAllSteps()

	step := e.CurrentStep().Get()
	require.NotNil(t, step)
	assert.Equal(t, len(data.Steps)-1, step.Index)
	assert.False(t, e.NextStep(), "a skipped run never reports progression completion")
}

func TestStopClearsState(t *testing.T) {
	e := New()
	e.StartTutorial(tutorialData(t, 0))
	e.StopTutorial()

	assert.False(t, e.IsStarted())
	assert.Nil(t, e.CurrentStep().Get())
	assert.Nil(t, e.Tutorial().Get())

	// Calls after stop are no-ops.
	assert.False(t, e.NextStep())
	e.SkipAllSteps()
	e.OnGameTargetHit(core.TargetBlue)
}

func TestRestartResetsProgress(t *testing.T) {
	e := New()
	data := tutorialData(t, 0)
	e.StartTutorial(data)
	e.SkipAllSteps()

	e.StartTutorial(tutorialData(t, 0))

	step := e.CurrentStep().Get()
	require.NotNil(t, step)
	assert.Equal(t, 0, step.Index)

	for i := 1; i < len(data.Steps); i++ {
		last := e.NextStep()
		assert.Equal(t, i == len(data.Steps)-1, last)
	}
}

func TestGameScoring(t *testing.T) {
	e := New()
	e.StartTutorial(tutorialData(t, 1))

	// Hits before StartGame are ignored.
	e.OnGameTargetHit(core.TargetBlue)
	assert.Equal(t, 0, e.Tutorial().Get().Game.Score)

	area := core.GameArea{X: 10, Y: 10, Width: 500, Height: 300}
	e.StartGame(area, 80)

	game := e.Tutorial().Get().Game
	require.NotNil(t, game)
	assert.Equal(t, area, game.Area)
	assert.Equal(t, 80, game.TargetSize)
	assert.Equal(t, 0, game.Score)

	e.OnGameTargetHit(core.TargetBlue)
	e.OnGameTargetHit(core.TargetBlue)
	assert.Equal(t, 4, e.Tutorial().Get().Game.Score)

	e.OnGameTargetHit(core.TargetRed)
	assert.Equal(t, 2, e.Tutorial().Get().Game.Score)

	// Restarting the game resets the score.
	e.StartGame(area, 80)
	assert.Equal(t, 0, e.Tutorial().Get().Game.Score)
}
