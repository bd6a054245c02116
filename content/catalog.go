// Package content houses concrete implementations of core.ContentSource. The
// interface itself (and the tutorial content types) live in the core package
// to centralize domain contracts. Keeping only implementations here prevents
// higher level packages (coordinator, engine) from depending on concrete
// catalogs.
package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coder2754/Smart-AutoClicker/core"
)

// Catalog is an immutable, index-ordered core.ContentSource.
type Catalog struct {
	tutorials []core.TutorialData
}

// New builds a Catalog from the given tutorials. Entries must carry
// contiguous indices starting at zero and at least one step each.
func New(tutorials []core.TutorialData) (*Catalog, error) {
	for i, tut := range tutorials {
		if tut.Index != i {
			return nil, fmt.Errorf("tutorial %q: index %d out of order, want %d", tut.Name, tut.Index, i)
		}
		if tut.Name == "" {
			return nil, fmt.Errorf("tutorial at index %d: missing name", i)
		}
		if len(tut.Steps) == 0 {
			return nil, fmt.Errorf("tutorial %q: no steps", tut.Name)
		}
		for j, step := range tut.Steps {
			if step.Index != j {
				return nil, fmt.Errorf("tutorial %q: step index %d out of order, want %d", tut.Name, step.Index, j)
			}
		}
	}
	return &Catalog{tutorials: tutorials}, nil
}

// TutorialsInfo returns the ordered catalog entries.
func (c *Catalog) TutorialsInfo() []core.TutorialInfo {
	infos := make([]core.TutorialInfo, len(c.tutorials))
	for i, tut := range c.tutorials {
		infos[i] = core.TutorialInfo{Index: tut.Index, Name: tut.Name, Description: tut.Description}
	}
	return infos
}

// TutorialData returns a copy of the full content for the tutorial at the
// given index, or ok=false when the index is out of bounds. The copy keeps
// callers from mutating catalog state through the returned pointer.
func (c *Catalog) TutorialData(index int) (*core.TutorialData, bool) {
	if index < 0 || index >= len(c.tutorials) {
		return nil, false
	}
	tut := c.tutorials[index]
	steps := make([]core.Step, len(tut.Steps))
	copy(steps, tut.Steps)
	tut.Steps = steps
	if tut.Game != nil {
		game := *tut.Game
		tut.Game = &game
	}
	return &tut, true
}

// catalogFile is the YAML document shape accepted by Load.
type catalogFile struct {
	Tutorials []core.TutorialData `yaml:"tutorials"`
}

// Load parses a YAML catalog document.
func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(file.Tutorials)
}

// LoadFile reads and parses a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Load(data)
}
