package content

import "github.com/coder2754/Smart-AutoClicker/core"

// Default returns the built-in tutorial catalog: a two-part guided
// walkthrough teaching single- and multi-condition click automation through
// the target mini-game.
func Default() *Catalog {
	catalog, err := New(defaultTutorials())
	if err != nil {
		// The built-in catalog is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return catalog
}

func defaultTutorials() []core.TutorialData {
	return []core.TutorialData{
		{
			Index:       0,
			Name:        "One Condition",
			Description: "Create your first click with a single detection condition.",
			Steps: []core.Step{
				{
					Index:       0,
					Instruction: "Welcome! This tutorial teaches the basics of automated clicking. Press next to begin.",
					Anchor:      core.StepAnchor{Kind: core.AnchorNone},
				},
				{
					Index:       1,
					Instruction: "This is the game area. Blue targets appear here while detection runs.",
					Anchor:      core.StepAnchor{Kind: core.AnchorGameTarget},
				},
				{
					Index:       2,
					Instruction: "Open the scenario panel and add a new click action.",
					Anchor:      core.StepAnchor{Kind: core.AnchorView, Target: "scenario_panel"},
				},
				{
					Index:       3,
					Instruction: "Capture the blue target as the click's detection condition.",
					Anchor:      core.StepAnchor{Kind: core.AnchorView, Target: "condition_capture"},
				},
				{
					Index:       4,
					Instruction: "Start detection and watch your click beat the game on its own.",
					Anchor:      core.StepAnchor{Kind: core.AnchorView, Target: "play_button"},
				},
			},
			Game: &core.Game{
				Instructions: "Hit as many blue targets as you can.",
				Area:         core.GameArea{X: 0, Y: 0, Width: 1080, Height: 600},
				TargetSize:   120,
				Rules:        core.GameRules{BluePoints: 1, RedPoints: 0},
			},
		},
		{
			Index:       1,
			Name:        "Multiple Conditions",
			Description: "Refine the scenario from the first tutorial with a second condition.",
			Steps: []core.Step{
				{
					Index:       0,
					Instruction: "Red targets now appear too, and hitting them costs points.",
					Anchor:      core.StepAnchor{Kind: core.AnchorGameTarget},
				},
				{
					Index:       1,
					Instruction: "Open the click you created in the previous tutorial.",
					Anchor:      core.StepAnchor{Kind: core.AnchorView, Target: "scenario_panel"},
				},
				{
					Index:       2,
					Instruction: "Add a second condition that rejects the red target.",
					Anchor:      core.StepAnchor{Kind: core.AnchorView, Target: "condition_capture"},
				},
				{
					Index:       3,
					Instruction: "Set the condition operator so the click fires only on blue.",
					Anchor:      core.StepAnchor{Kind: core.AnchorView, Target: "condition_operator"},
				},
				{
					Index:       4,
					Instruction: "Run detection again and compare your score.",
					Anchor:      core.StepAnchor{Kind: core.AnchorView, Target: "play_button"},
				},
			},
			Game: &core.Game{
				Instructions: "Hit blue targets, avoid red ones.",
				Area:         core.GameArea{X: 0, Y: 0, Width: 1080, Height: 600},
				TargetSize:   120,
				Rules:        core.GameRules{BluePoints: 2, RedPoints: -2},
			},
		},
	}
}
