// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-driven settings. Flags on individual
// commands override these.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `env:"BLACKSTAR_DB"`

	// CatalogPath points at a JSON catalog replacing the built-in
	// specialty catalog.
	CatalogPath string `env:"BLACKSTAR_CATALOG"`

	// SnapshotKeep is how many profile snapshots to retain after a save.
	SnapshotKeep int `env:"BLACKSTAR_SNAPSHOT_KEEP" envDefault:"10"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.SnapshotKeep < 1 {
		return nil, fmt.Errorf("BLACKSTAR_SNAPSHOT_KEEP must be at least 1, got %d", cfg.SnapshotKeep)
	}
	return cfg, nil
}
