package core

import "github.com/coder2754/Smart-AutoClicker/observable"

// PreferenceStore persists small UI-facing flags across process restarts.
type PreferenceStore interface {
	// IsFirstTimePopupShown reports whether the tutorial introduction popup
	// has already been shown to this user.
	IsFirstTimePopupShown() bool

	// SetFirstTimePopupShown records the popup-shown flag.
	SetFirstTimePopupShown(shown bool)
}

// ScenarioStore persists automation scenarios and tutorial success records.
//
// A concrete implementation is responsible for:
//   - Assigning database identities to newly created scenarios
//   - Tracking which tutorials succeeded, and in which scenario
//   - Segregating tutorial scenarios from the user's real ones while
//     tutorial mode is active
//
// Implementations SHOULD:
//   - Publish every success-list change through TutorialSuccessList
//   - Keep TutorialSuccessList ordered by tutorial index
//   - Be safe for concurrent use.
type ScenarioStore interface {
	// TutorialSuccessList exposes the ordered list of recorded tutorial
	// outcomes as an observable state stream.
	TutorialSuccessList() *observable.Value[[]TutorialSuccess]

	// StartTutorialMode segregates normal scenario visibility for the
	// duration of a tutorial session.
	StartTutorialMode()

	// StopTutorialMode restores normal scenario visibility.
	StopTutorialMode()

	// AddScenario creates a scenario from the spec and returns its newly
	// assigned identifier.
	AddScenario(spec ScenarioSpec) (ScenarioID, error)

	// TutorialScenarioID returns the scenario id recorded for the tutorial
	// at the given index, or ok=false when no record exists.
	TutorialScenarioID(index int) (ScenarioID, bool, error)

	// IsTutorialSucceed reports whether the tutorial at the given index has
	// a recorded success.
	IsTutorialSucceed(index int) (bool, error)

	// SetTutorialSuccess records the outcome of a tutorial run.
	SetTutorialSuccess(index int, id ScenarioID, completed bool) error
}
