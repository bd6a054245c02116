package core

// TutorialInfo is a catalog entry: the static identity and display content of
// one tutorial, before any unlock annotation.
type TutorialInfo struct {
	Index       int
	Name        string
	Description string
}

// Tutorial is a catalog entry annotated with its unlock state, as exposed to
// the UI layer.
type Tutorial struct {
	Index       int
	Name        string
	Description string
	Unlocked    bool
}

// Unlocked reports whether the tutorial at the given catalog position is
// available: the first tutorial always is, every later one requires at least
// as many recorded successes as its position.
func Unlocked(index, successCount int) bool {
	return index == 0 || index <= successCount
}

// AnchorKind identifies what a step's instruction is anchored to on screen.
type AnchorKind int

const (
	// AnchorNone means the step is a free-floating instruction.
	AnchorNone AnchorKind = iota
	// AnchorView anchors the step to a named view in the surrounding UI.
	AnchorView
	// AnchorGameTarget anchors the step to the mini-game target area.
	AnchorGameTarget
)

// StepAnchor describes the on-screen element a step points at. Target is a
// symbolic name resolved by the UI layer; this module never renders.
type StepAnchor struct {
	Kind   AnchorKind `yaml:"kind"`
	Target string     `yaml:"target,omitempty"`
}

// Step is a single instructional unit within a tutorial. Steps are transient
// session state owned by the session engine.
type Step struct {
	Index       int        `yaml:"index"`
	Instruction string     `yaml:"instruction"`
	Anchor      StepAnchor `yaml:"anchor"`
}

// TutorialData is the full content of one tutorial: its ordered steps plus an
// optional mini-game. Produced by a ContentSource, consumed by the session
// engine.
type TutorialData struct {
	Index       int    `yaml:"index"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
	Game        *Game  `yaml:"game,omitempty"`
}
