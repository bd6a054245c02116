// Package config loads module configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries the wiring knobs for durable default collaborators.
type Config struct {
	// DatabasePath is the SQLite file backing the scenario store.
	DatabasePath string `env:"TUTORIAL_DB_PATH" envDefault:"tutorial.db"`
	// AppName namespaces durable preference storage.
	AppName string `env:"TUTORIAL_APP_NAME" envDefault:"smart-autoclicker"`
	// CatalogPath optionally points at a YAML tutorial catalog; empty means
	// the built-in catalog.
	CatalogPath string `env:"TUTORIAL_CATALOG_PATH"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"TUTORIAL_LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
