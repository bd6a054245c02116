package tutorial

import (
	"sync"

	"github.com/google/uuid"

	"github.com/coder2754/Smart-AutoClicker/core"
	"github.com/coder2754/Smart-AutoClicker/logging"
	"github.com/coder2754/Smart-AutoClicker/observable"
)

// Scenario creation parameters for the first tutorial. Every later tutorial
// continues inside the scenario established by its predecessor.
const (
	// FirstTutorialScenarioName is the fixed name of the scenario backing
	// tutorial index 0.
	FirstTutorialScenarioName = "Tutorial"
	// FirstTutorialDetectionQuality is the fixed detection quality of the
	// scenario backing tutorial index 0.
	FirstTutorialDetectionQuality = 600
)

// Deps are the collaborators the Coordinator orchestrates. All fields are
// required.
type Deps struct {
	Prefs     core.PreferenceStore
	Scenarios core.ScenarioStore
	Detection core.DetectionEngine
	Content   core.ContentSource
	Engine    core.SessionEngine
}

// Options configures the Coordinator.
type Options struct {
	// Logger receives coordination diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// WithLogger sets the coordination logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// Coordinator orchestrates one tutorial session at a time. Construct it once
// at application start and share it by reference; it holds no hidden global
// state.
type Coordinator struct {
	deps   Deps
	logger logging.Logger
	disp   *dispatcher

	mu               sync.Mutex
	inTutorialMode   bool
	savedScenarioID  core.ScenarioID
	savedScenarioOK  bool
	activeIndex      int
	activeIndexOK    bool
	activeScenarioID core.ScenarioID
	allStepsDone     bool
	sessionID        string

	tutorials      *observable.Value[[]core.Tutorial]
	activeTutorial *observable.Value[*core.Tutorial]
	activeGame     *observable.Value[*core.Game]
	stops          []func()
}

// NewCoordinator creates a Coordinator over the given collaborators.
func NewCoordinator(deps Deps, optFns ...func(o *Options)) (*Coordinator, error) {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	disp, err := newDispatcher()
	if err != nil {
		return nil, err
	}

	c := &Coordinator{
		deps:           deps,
		logger:         opts.Logger,
		disp:           disp,
		activeTutorial: observable.New[*core.Tutorial](nil),
	}

	// Tutorial list: catalog entries annotated with unlock state, recomputed
	// on every success-list change.
	infos := deps.Content.TutorialsInfo()
	tutorials, stopList := observable.Map(deps.Scenarios.TutorialSuccessList(), func(successes []core.TutorialSuccess) []core.Tutorial {
		return annotate(infos, len(successes))
	})
	c.tutorials = tutorials

	// Active game: the game payload of whatever tutorial the engine runs.
	game, stopGame := observable.Map(deps.Engine.Tutorial(), func(data *core.TutorialData) *core.Game {
		if data == nil {
			return nil
		}
		return data.Game
	})
	c.activeGame = game
	c.stops = []func(){stopList, stopGame}

	return c, nil
}

// Close releases the background worker and derivation subscriptions. The
// Coordinator must not be used afterwards.
func (c *Coordinator) Close() {
	for _, stop := range c.stops {
		stop()
	}
	c.disp.release()
}

func annotate(infos []core.TutorialInfo, successCount int) []core.Tutorial {
	list := make([]core.Tutorial, len(infos))
	for i, info := range infos {
		list[i] = core.Tutorial{
			Index:       info.Index,
			Name:        info.Name,
			Description: info.Description,
			Unlocked:    core.Unlocked(info.Index, successCount),
		}
	}
	return list
}

// Tutorials exposes the catalog annotated with unlock state.
func (c *Coordinator) Tutorials() *observable.Value[[]core.Tutorial] {
	return c.tutorials
}

// ActiveTutorial exposes the catalog entry of the running tutorial, nil when
// none runs.
func (c *Coordinator) ActiveTutorial() *observable.Value[*core.Tutorial] {
	return c.activeTutorial
}

// ActiveStep exposes the step the user is on, nil when no tutorial runs.
func (c *Coordinator) ActiveStep() *observable.Value[*core.Step] {
	return c.deps.Engine.CurrentStep()
}

// ActiveGame exposes the running tutorial's game payload, nil when none runs
// or the tutorial has no game.
func (c *Coordinator) ActiveGame() *observable.Value[*core.Game] {
	return c.activeGame
}

// SetupTutorialMode enters tutorial mode: the user's currently active
// scenario is saved for later restore and the scenario store segregates
// normal scenario visibility. Idempotent; calling it while tutorial mode is
// already active is a logged no-op.
//
// Mode membership is tracked separately from the saved scenario id. When the
// detection engine reports no active scenario at setup time, tutorial mode is
// still entered with nothing saved, and StopTutorialMode then skips the
// restore instead of forcing a zero id onto the detection engine.
func (c *Coordinator) SetupTutorialMode() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inTutorialMode {
		c.logger.Debug("tutorial mode already set up")
		return
	}

	c.savedScenarioID, c.savedScenarioOK = c.deps.Detection.ScenarioID()
	c.inTutorialMode = true
	c.sessionID = uuid.NewString()
	c.disp.do(c.deps.Scenarios.StartTutorialMode)
	c.logger.Info("tutorial mode set up", "session_id", c.sessionID, "saved_scenario", int64(c.savedScenarioID))
}

// StopTutorialMode leaves tutorial mode: any running tutorial is stopped
// first, the detection engine's active scenario is restored to the saved one,
// all session state is cleared and the scenario store leaves tutorial mode.
// Safe to call mid-flight; a no-op when tutorial mode is not active.
func (c *Coordinator) StopTutorialMode() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.inTutorialMode {
		c.logger.Debug("tutorial mode not set up, nothing to stop")
		return
	}

	c.stopTutorialLocked()
	if c.savedScenarioOK {
		c.deps.Detection.SetScenarioID(c.savedScenarioID)
	}
	c.logger.Info("tutorial mode stopped", "session_id", c.sessionID, "restored_scenario", int64(c.savedScenarioID))

	c.inTutorialMode = false
	c.savedScenarioID = 0
	c.savedScenarioOK = false
	c.sessionID = ""
	c.disp.do(c.deps.Scenarios.StopTutorialMode)
}

// StartTutorial begins the tutorial at the given catalog index. Precondition
// failures (tutorial already running, mode not set up, index out of bounds)
// and scenario-resolution failures are logged no-ops; on failure no session
// state changes at all.
func (c *Coordinator) StartTutorial(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.deps.Engine.IsStarted() {
		c.logger.Warn("can't start tutorial, one is already running", "index", index)
		return
	}
	if !c.inTutorialMode {
		c.logger.Warn("can't start tutorial, tutorial mode is not set up", "index", index)
		return
	}
	infos := c.deps.Content.TutorialsInfo()
	if index < 0 || index >= len(infos) {
		c.logger.Warn("can't start tutorial, index out of bounds", "index", index, "catalog_size", len(infos))
		return
	}

	data, ok := c.deps.Content.TutorialData(index)
	if !ok {
		c.logger.Error("no content for tutorial", "index", index)
		return
	}
	if len(data.Steps) == 0 {
		c.logger.Error("can't start tutorial, it has no steps", "index", index)
		return
	}

	scenarioID, ok := c.resolveScenario(index)
	if !ok {
		return
	}

	c.deps.Detection.SetScenarioID(scenarioID)
	c.activeIndex = index
	c.activeIndexOK = true
	c.activeScenarioID = scenarioID
	c.allStepsDone = false
	c.deps.Engine.StartTutorial(data)

	successCount := len(c.deps.Scenarios.TutorialSuccessList().Get())
	c.activeTutorial.Set(&core.Tutorial{
		Index:       infos[index].Index,
		Name:        infos[index].Name,
		Description: infos[index].Description,
		Unlocked:    core.Unlocked(index, successCount),
	})
	c.logger.Info("tutorial started", "session_id", c.sessionID, "index", index, "scenario", int64(scenarioID))
}

// resolveScenario returns the backing scenario for the tutorial at index: a
// freshly created one for index 0, the predecessor's recorded scenario for
// every later index. Caller must hold the lock.
func (c *Coordinator) resolveScenario(index int) (core.ScenarioID, bool) {
	var (
		id  core.ScenarioID
		ok  bool
		err error
	)
	c.disp.do(func() {
		if index == 0 {
			id, err = c.deps.Scenarios.AddScenario(core.ScenarioSpec{
				Name:             FirstTutorialScenarioName,
				DetectionQuality: FirstTutorialDetectionQuality,
				EndConditionOr:   true,
			})
			ok = err == nil && id != 0
			return
		}
		id, ok, err = c.deps.Scenarios.TutorialScenarioID(index - 1)
	})
	if err != nil {
		c.logger.Error("scenario resolution failed", "index", index, "error", err)
		return 0, false
	}
	if !ok || id == 0 {
		c.logger.Error("no scenario available for tutorial", "index", index)
		return 0, false
	}
	return id, true
}

// StopTutorial ends the running tutorial: the session engine and detection
// are stopped and, unless this tutorial already has a recorded success, the
// outcome is recorded against the scenario the run happened in. Tutorial mode
// itself stays active; only StopTutorialMode leaves it. A no-op when no
// tutorial runs.
func (c *Coordinator) StopTutorial() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.activeIndexOK {
		c.logger.Debug("no tutorial running, nothing to stop")
		return
	}
	c.stopTutorialLocked()
}

// stopTutorialLocked performs the stop-tutorial flow; caller must hold the
// lock and have verified a tutorial is active or be on the teardown path.
func (c *Coordinator) stopTutorialLocked() {
	if !c.activeIndexOK {
		return
	}
	index := c.activeIndex
	scenarioID := c.activeScenarioID
	completed := c.allStepsDone

	c.deps.Engine.StopTutorial()
	c.deps.Detection.StopDetection()

	c.disp.do(func() {
		succeeded, err := c.deps.Scenarios.IsTutorialSucceed(index)
		if err != nil {
			c.logger.Error("can't read tutorial success state", "index", index, "error", err)
			return
		}
		if succeeded {
			return
		}
		if err := c.deps.Scenarios.SetTutorialSuccess(index, scenarioID, completed); err != nil {
			c.logger.Error("can't record tutorial success", "index", index, "error", err)
		}
	})

	c.activeIndex = 0
	c.activeIndexOK = false
	c.activeScenarioID = 0
	c.allStepsDone = false
	c.activeTutorial.Set(nil)
	c.logger.Info("tutorial stopped", "session_id", c.sessionID, "index", index, "completed", completed)
}

// NextTutorialStep advances the running tutorial one step. Whether that
// advancement reached the final step through normal progression (as opposed
// to skipping) is captured as the completion flag for the eventual success
// record.
func (c *Coordinator) NextTutorialStep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.allStepsDone = c.deps.Engine.NextStep()
}

// SkipAllTutorialSteps jumps the running tutorial to its end. Skipping is not
// completion; the completion flag is left untouched.
func (c *Coordinator) SkipAllTutorialSteps() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deps.Engine.SkipAllSteps()
}

// StartGame starts the running tutorial's mini-game.
func (c *Coordinator) StartGame(area core.GameArea, targetSize int) {
	c.deps.Engine.StartGame(area, targetSize)
}

// OnGameTargetHit forwards a mini-game target hit to the session engine.
func (c *Coordinator) OnGameTargetHit(target core.TargetType) {
	c.deps.Engine.OnGameTargetHit(target)
}

// IsTutorialFirstTimePopupShown reports whether the tutorial introduction
// popup has already been shown.
func (c *Coordinator) IsTutorialFirstTimePopupShown() bool {
	return c.deps.Prefs.IsFirstTimePopupShown()
}

// SetTutorialFirstTimePopupShown records that the tutorial introduction
// popup has been shown.
func (c *Coordinator) SetTutorialFirstTimePopupShown() {
	c.deps.Prefs.SetFirstTimePopupShown(true)
}
