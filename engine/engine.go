package engine

import (
	"sync"

	"github.com/coder2754/Smart-AutoClicker/core"
	"github.com/coder2754/Smart-AutoClicker/logging"
	"github.com/coder2754/Smart-AutoClicker/observable"
)

// Engine is the default core.SessionEngine implementation. It is safe for
// concurrent access; each operation holds the engine lock for its duration.
type Engine struct {
	mu          sync.Mutex
	data        *core.TutorialData
	stepIndex   int
	skipped     bool
	gameStarted bool

	currentStep *observable.Value[*core.Step]
	tutorial    *observable.Value[*core.TutorialData]
	logger      logging.Logger
}

// Options configures the Engine.
type Options struct {
	// Logger receives step and game diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// New creates an Engine with no running tutorial.
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Engine{
		currentStep: observable.New[*core.Step](nil),
		tutorial:    observable.New[*core.TutorialData](nil),
		logger:      opts.Logger,
	}
}

// CurrentStep exposes the step the user is on, nil when no tutorial runs.
func (e *Engine) CurrentStep() *observable.Value[*core.Step] {
	return e.currentStep
}

// Tutorial exposes the running tutorial's content, nil when none runs.
func (e *Engine) Tutorial() *observable.Value[*core.TutorialData] {
	return e.tutorial
}

// IsStarted reports whether a tutorial is currently running.
func (e *Engine) IsStarted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.data != nil
}

// StartTutorial begins the given tutorial at its first step. Starting while
// another tutorial runs replaces it.
func (e *Engine) StartTutorial(data *core.TutorialData) {
	if data == nil || len(data.Steps) == 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.data = data
	e.stepIndex = 0
	e.skipped = false
	e.gameStarted = false
	e.logger.Debug("tutorial started", "tutorial_index", data.Index, "steps", len(data.Steps))
	e.publishLocked()
}

// StopTutorial ends the running tutorial and clears transient state.
func (e *Engine) StopTutorial() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.data == nil {
		return
	}
	e.logger.Debug("tutorial stopped", "tutorial_index", e.data.Index)
	e.data = nil
	e.stepIndex = 0
	e.skipped = false
	e.gameStarted = false
	e.tutorial.Set(nil)
	e.currentStep.Set(nil)
}

// NextStep advances one step. It returns true iff the final step has been
// reached purely through stepwise progression; once a run was skipped it
// never returns true again.
func (e *Engine) NextStep() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.data == nil {
		return false
	}
	if e.stepIndex < len(e.data.Steps)-1 {
		e.stepIndex++
		e.publishLocked()
	}
	return !e.skipped && e.stepIndex == len(e.data.Steps)-1
}

// SkipAllSteps jumps directly to the last step and marks the run as skipped.
func (e *Engine) SkipAllSteps() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.data == nil {
		return
	}
	e.skipped = true
	if e.stepIndex != len(e.data.Steps)-1 {
		e.stepIndex = len(e.data.Steps) - 1
		e.publishLocked()
	}
	e.logger.Debug("tutorial steps skipped", "tutorial_index", e.data.Index)
}

// StartGame begins the mini-game within the given area using the given target
// size. The score is reset to zero.
func (e *Engine) StartGame(area core.GameArea, targetSize int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.data == nil || e.data.Game == nil {
		return
	}
	e.data.Game.Area = area
	e.data.Game.TargetSize = targetSize
	e.data.Game.Score = 0
	e.gameStarted = true
	e.publishLocked()
}

// OnGameTargetHit applies the game's scoring rules for a hit of the given
// target type. Hits before StartGame are ignored.
func (e *Engine) OnGameTargetHit(target core.TargetType) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.data == nil || e.data.Game == nil || !e.gameStarted {
		return
	}
	game := e.data.Game
	game.Score = game.Rules.Apply(game.Score, target)
	e.logger.Debug("game target hit", "target", target.String(), "score", game.Score)
	e.publishLocked()
}

// publishLocked pushes fresh snapshots to both observables; caller must hold
// the lock. Snapshots keep observers from seeing later mutations.
func (e *Engine) publishLocked() {
	data := *e.data
	if e.data.Game != nil {
		game := *e.data.Game
		data.Game = &game
	}
	step := e.data.Steps[e.stepIndex]
	e.tutorial.Set(&data)
	e.currentStep.Set(&step)
}
