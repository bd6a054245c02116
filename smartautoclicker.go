// Package smartautoclicker provides a high-level façade over the tutorial
// session coordinator and its collaborator abstractions (scenario storage,
// detection, content, preferences & logging) enabling rapid wiring of the
// in-app tutorial experience. Most applications interact with this package
// by:
//  1. Creating a Coordinator via New() (optionally overriding default
//     in-memory collaborators)
//  2. Driving the session from the UI layer (setup, start, step, stop)
//  3. Subscribing to the derived state streams for rendering
//
// The façade delegates coordination to tutorial.Coordinator while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply durable
// store implementations (see NewFromConfig) and a structured logger.
package smartautoclicker

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/coder2754/Smart-AutoClicker/config"
	"github.com/coder2754/Smart-AutoClicker/content"
	"github.com/coder2754/Smart-AutoClicker/core"
	"github.com/coder2754/Smart-AutoClicker/detection"
	"github.com/coder2754/Smart-AutoClicker/engine"
	"github.com/coder2754/Smart-AutoClicker/logging"
	"github.com/coder2754/Smart-AutoClicker/prefs"
	"github.com/coder2754/Smart-AutoClicker/scenario"
	"github.com/coder2754/Smart-AutoClicker/tutorial"
)

// Options configures the wiring of a Coordinator.
type Options struct {
	// Collaborators (default to in-memory implementations if not provided)
	Prefs     core.PreferenceStore
	Scenarios core.ScenarioStore
	Detection core.DetectionEngine
	Content   core.ContentSource
	Engine    core.SessionEngine

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// New creates a tutorial Coordinator with optional overrides. Any unset
// collaborator is initialized with an in-memory implementation and the
// built-in catalog.
func New(optFns ...func(o *Options)) (*tutorial.Coordinator, error) {
	opts := Options{
		Prefs:     prefs.NewInMemoryStore(),
		Scenarios: scenario.NewInMemoryStore(),
		Detection: detection.NewController(),
		Content:   content.Default(),
		Logger:    logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Engine == nil {
		opts.Engine = engine.New(func(o *engine.Options) { o.Logger = opts.Logger })
	}

	return tutorial.NewCoordinator(tutorial.Deps{
		Prefs:     opts.Prefs,
		Scenarios: opts.Scenarios,
		Detection: opts.Detection,
		Content:   opts.Content,
		Engine:    opts.Engine,
	}, tutorial.WithLogger(opts.Logger))
}

// NewFromConfig wires durable default collaborators from the given
// configuration: a SQLite scenario store, gdata-backed preferences and an
// optional YAML catalog. The returned close function releases the coordinator
// and the database. The detection engine defaults to the in-process
// controller; platform deployments override it via optFns.
func NewFromConfig(cfg config.Config, optFns ...func(o *Options)) (*tutorial.Coordinator, func() error, error) {
	logger := logging.NewSlogLogger(logging.ParseLevel(cfg.LogLevel), "json", false)

	store, err := scenario.OpenSQLiteStore(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open scenario store: %w", err)
	}

	manager, err := gdata.Open(gdata.Config{AppName: cfg.AppName})
	if err != nil {
		// Durable preferences are best effort; degrade rather than fail.
		logger.Warn("durable preferences unavailable", "error", err)
		manager = nil
	}
	prefStore, err := prefs.NewGDataStore(manager, logger)
	if err != nil {
		logger.Warn("failed to load preferences, using defaults", "error", err)
	}

	catalog := core.ContentSource(content.Default())
	if cfg.CatalogPath != "" {
		loaded, err := content.LoadFile(cfg.CatalogPath)
		if err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("load catalog: %w", err)
		}
		catalog = loaded
	}

	coord, err := New(append([]func(o *Options){func(o *Options) {
		o.Prefs = prefStore
		o.Scenarios = store
		o.Content = catalog
		o.Logger = logger
	}}, optFns...)...)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	closeFn := func() error {
		coord.Close()
		return store.Close()
	}
	return coord, closeFn, nil
}
