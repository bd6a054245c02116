package core

// ScenarioID identifies an automation scenario in the backing database. The
// zero value never identifies a real scenario.
type ScenarioID int64

// ScenarioSpec describes a scenario to be created in the scenario store.
type ScenarioSpec struct {
	Name             string
	DetectionQuality int
	// EndConditionOr selects the OR end-condition policy: the scenario ends
	// when any of its end conditions is fulfilled.
	EndConditionOr bool
}

// TutorialSuccess records the outcome of one tutorial run: the catalog
// position, the database scenario the run happened in, and whether the user
// walked every step rather than skipping.
type TutorialSuccess struct {
	TutorialIndex int
	ScenarioID    ScenarioID
	Completed     bool
}
