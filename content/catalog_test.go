package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coder2754/Smart-AutoClicker/core"
)

// Interface compliance (compile-time assertion)
var _ core.ContentSource = (*Catalog)(nil)

func TestDefaultCatalog(t *testing.T) {
	catalog := Default()

	infos := catalog.TutorialsInfo()
	require.Len(t, infos, 2)
	assert.Equal(t, 0, infos[0].Index)
	assert.Equal(t, "One Condition", infos[0].Name)
	assert.Equal(t, 1, infos[1].Index)

	data, ok := catalog.TutorialData(0)
	require.True(t, ok)
	assert.NotEmpty(t, data.Steps)
	require.NotNil(t, data.Game)
	assert.Equal(t, 1, data.Game.Rules.BluePoints)

	_, ok = catalog.TutorialData(2)
	assert.False(t, ok)
	_, ok = catalog.TutorialData(-1)
	assert.False(t, ok)
}

func TestTutorialDataReturnsCopy(t *testing.T) {
	catalog := Default()

	data, ok := catalog.TutorialData(0)
	require.True(t, ok)
	data.Steps[0].Instruction = "mutated"
	data.Game.TargetSize = 1

	again, ok := catalog.TutorialData(0)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", again.Steps[0].Instruction)
	assert.NotEqual(t, 1, again.Game.TargetSize)
}

func TestNewValidation(t *testing.T) {
	step := core.Step{Index: 0, Instruction: "do it"}

	t.Run("index out of order", func(t *testing.T) {
		_, err := New([]core.TutorialData{{Index: 1, Name: "a", Steps: []core.Step{step}}})
		assert.Error(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := New([]core.TutorialData{{Index: 0, Steps: []core.Step{step}}})
		assert.Error(t, err)
	})

	t.Run("no steps", func(t *testing.T) {
		_, err := New([]core.TutorialData{{Index: 0, Name: "a"}})
		assert.Error(t, err)
	})

	t.Run("step index out of order", func(t *testing.T) {
		bad := core.Step{Index: 2, Instruction: "x"}
		_, err := New([]core.TutorialData{{Index: 0, Name: "a", Steps: []core.Step{bad}}})
		assert.Error(t, err)
	})
}

func TestLoadYAML(t *testing.T) {
	doc := []byte(`
tutorials:
  - index: 0
    name: Basics
    description: First steps.
    steps:
      - index: 0
        instruction: Press next.
        anchor:
          kind: 0
      - index: 1
        instruction: Open the panel.
        anchor:
          kind: 1
          target: scenario_panel
    game:
      instructions: Hit blue.
      area: {x: 0, y: 0, width: 800, height: 400}
      targetSize: 100
      rules: {bluePoints: 1, redPoints: -1}
`)

	catalog, err := Load(doc)
	require.NoError(t, err)

	data, ok := catalog.TutorialData(0)
	require.True(t, ok)
	assert.Equal(t, "Basics", data.Name)
	require.Len(t, data.Steps, 2)
	assert.Equal(t, core.AnchorView, data.Steps[1].Anchor.Kind)
	assert.Equal(t, "scenario_panel", data.Steps[1].Anchor.Target)
	require.NotNil(t, data.Game)
	assert.Equal(t, 100, data.Game.TargetSize)
	assert.Equal(t, -1, data.Game.Rules.RedPoints)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("tutorials: ["))
	assert.Error(t, err)
}
