package core

// ContentSource is a static catalog of tutorial definitions indexed by
// position. Implementations are read-only and safe for concurrent use.
type ContentSource interface {
	// TutorialsInfo returns the ordered catalog entries.
	TutorialsInfo() []TutorialInfo

	// TutorialData returns the full step and game content for the tutorial
	// at the given index, or ok=false when the index is out of bounds.
	TutorialData(index int) (*TutorialData, bool)
}
