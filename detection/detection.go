// Package detection provides a minimal in-process implementation of
// core.DetectionEngine. Real deployments plug in the platform detection
// runtime; this implementation tracks the active scenario and running flag
// so examples and tests can observe scenario swaps.
package detection

import (
	"sync"

	"github.com/coder2754/Smart-AutoClicker/core"
)

// Controller is an in-process core.DetectionEngine. Safe for concurrent use.
type Controller struct {
	mu       sync.RWMutex
	scenario core.ScenarioID
	active   bool
	running  bool
}

// NewController constructs a Controller with no active scenario.
func NewController() *Controller {
	return &Controller{}
}

// ScenarioID returns the currently active scenario id.
func (c *Controller) ScenarioID() (core.ScenarioID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scenario, c.active
}

// SetScenarioID makes the given scenario the active detection target.
func (c *Controller) SetScenarioID(id core.ScenarioID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scenario = id
	c.active = true
}

// ClearScenario detaches the active scenario.
func (c *Controller) ClearScenario() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scenario = 0
	c.active = false
}

// StartDetection marks detection as running for the active scenario.
func (c *Controller) StartDetection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		c.running = true
	}
}

// StopDetection halts any in-flight detection.
func (c *Controller) StopDetection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
}

// IsDetecting reports whether detection is currently running.
func (c *Controller) IsDetecting() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.running
}
