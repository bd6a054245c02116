package core

import "github.com/coder2754/Smart-AutoClicker/observable"

// DetectionEngine is the boundary to the automated detection runtime. It owns
// which scenario is currently active for detection.
type DetectionEngine interface {
	// ScenarioID returns the currently active scenario id, or ok=false when
	// no scenario is active.
	ScenarioID() (ScenarioID, bool)

	// SetScenarioID makes the given scenario the active detection target.
	SetScenarioID(id ScenarioID)

	// StopDetection halts any in-flight detection for the active scenario.
	StopDetection()
}

// SessionEngine drives one tutorial's step sequence and its embedded
// mini-game.
//
// A concrete implementation is responsible for:
//   - Advancing through the tutorial's ordered steps
//   - Distinguishing stepwise progression from skipping to the end
//   - Running the mini-game mechanics (score, target hits)
//
// Implementations SHOULD:
//   - Expose current step and tutorial as observable state streams
//   - Publish nil on both streams once stopped
//   - Treat NextStep/SkipAllSteps/game calls before StartTutorial as no-ops.
type SessionEngine interface {
	// CurrentStep exposes the step the user is on, nil when no tutorial is
	// running.
	CurrentStep() *observable.Value[*Step]

	// Tutorial exposes the running tutorial's content, nil when none runs.
	Tutorial() *observable.Value[*TutorialData]

	// IsStarted reports whether a tutorial is currently running.
	IsStarted() bool

	// StartTutorial begins the given tutorial at its first step.
	StartTutorial(data *TutorialData)

	// StopTutorial ends the running tutorial and clears transient state.
	StopTutorial()

	// NextStep advances one step. It returns true only when this advancement
	// reached the final step through normal progression, never after a skip.
	NextStep() bool

	// SkipAllSteps jumps directly to the last step. Skipping is not
	// completion: it never causes NextStep to report progression.
	SkipAllSteps()

	// StartGame begins the mini-game within the given area using the given
	// target size.
	StartGame(area GameArea, targetSize int)

	// OnGameTargetHit applies the game's scoring rules for a hit of the
	// given target type.
	OnGameTargetHit(target TargetType)
}
