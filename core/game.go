package core

// TargetType identifies which kind of target was hit during the mini-game.
type TargetType int

const (
	// TargetBlue is the primary scoring target.
	TargetBlue TargetType = iota
	// TargetRed is the penalty target.
	TargetRed
)

// String returns the string representation of the target type.
func (t TargetType) String() string {
	switch t {
	case TargetBlue:
		return "blue"
	case TargetRed:
		return "red"
	default:
		return "unknown"
	}
}

// GameArea is the rectangle, in screen coordinates, within which game targets
// may appear.
type GameArea struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameRules defines per-target scoring for a mini-game. Score never goes
// below zero.
type GameRules struct {
	BluePoints int `yaml:"bluePoints"`
	RedPoints  int `yaml:"redPoints"`
}

// Apply returns the new score after a hit of the given target type.
func (r GameRules) Apply(score int, target TargetType) int {
	switch target {
	case TargetBlue:
		score += r.BluePoints
	case TargetRed:
		score += r.RedPoints
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Game is the mini-game payload associated with a tutorial: the target area,
// the target size and the scoring rules. Score is transient session state
// owned by the session engine.
type Game struct {
	Instructions string    `yaml:"instructions"`
	Area         GameArea  `yaml:"area"`
	TargetSize   int       `yaml:"targetSize"`
	Rules        GameRules `yaml:"rules"`
	Score        int       `yaml:"-"`
}
