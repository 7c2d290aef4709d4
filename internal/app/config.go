package app

import (
	"errors"

	"github.com/vk/sweepgo/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
// Sweep-related fields left at their zero value are filled from the sweep
// file during setup; values set here (normally from CLI flags) always win.
type Config struct {
	SweepPath string // .hcl file or directory

	// Overrides are trailing override tokens appended verbatim to every job.
	Overrides []string

	// Sweep axis supplied on the command line, overriding the sweep file.
	Seeds   *config.SeedSpec
	SeedKey string

	// Launcher selection, overriding the sweep file.
	Backend string
	Command []string
	Workers int
	DryRun  bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SweepPath == "" {
		return nil, errors.New("SweepPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
