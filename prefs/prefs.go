// Package prefs houses concrete implementations of core.PreferenceStore. The
// interface itself lives in the core package to centralize domain contracts.
//
// Two backends are provided: a volatile in-memory store for tests and demos,
// and a durable store backed by quasilyte/gdata which survives process
// restarts on every platform gdata supports.
package prefs

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/coder2754/Smart-AutoClicker/logging"
)

// InMemoryStore is a volatile PreferenceStore implementation. It is safe for
// concurrent access and best suited for tests or ephemeral demo runs.
type InMemoryStore struct {
	mu             sync.RWMutex
	firstTimeShown bool
}

// NewInMemoryStore constructs an empty in-memory preference store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// IsFirstTimePopupShown reports whether the popup-shown flag is set.
func (s *InMemoryStore) IsFirstTimePopupShown() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.firstTimeShown
}

// SetFirstTimePopupShown records the popup-shown flag.
func (s *InMemoryStore) SetFirstTimePopupShown(shown bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.firstTimeShown = shown
}

// payload is the YAML document persisted per user through gdata.
type payload struct {
	FirstTimePopupShown bool `yaml:"firstTimePopupShown"`
}

// gdata object/property keys
const (
	prefsObject   = "tutorial"
	prefsProperty = "flags"
)

// GDataStore is a durable PreferenceStore backed by a gdata manager. A nil
// manager degrades to in-memory behavior without error, so callers on
// platforms without durable storage still work.
type GDataStore struct {
	mu      sync.RWMutex
	manager *gdata.Manager
	flags   payload
	logger  logging.Logger
}

// NewGDataStore constructs a GDataStore and loads any previously persisted
// flags. A load failure is not fatal; defaults are used and the error
// surfaced to the caller for logging.
func NewGDataStore(manager *gdata.Manager, logger logging.Logger) (*GDataStore, error) {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	s := &GDataStore{manager: manager, logger: logger}
	if err := s.load(); err != nil {
		return s, fmt.Errorf("load preferences: %w", err)
	}
	return s, nil
}

func (s *GDataStore) load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return err
	}
	var loaded payload
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return err
	}
	s.flags = loaded
	return nil
}

func (s *GDataStore) save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.flags)
	if err != nil {
		return err
	}
	return s.manager.SaveObjectProp(prefsObject, prefsProperty, data)
}

// IsFirstTimePopupShown reports whether the popup-shown flag is set.
func (s *GDataStore) IsFirstTimePopupShown() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags.FirstTimePopupShown
}

// SetFirstTimePopupShown records the popup-shown flag and persists it. A
// persistence failure keeps the in-memory value and is logged.
func (s *GDataStore) SetFirstTimePopupShown(shown bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags.FirstTimePopupShown = shown
	if err := s.save(); err != nil {
		s.logger.Warn("failed to persist preferences", "error", err)
	}
}
