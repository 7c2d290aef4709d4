package config

import (
	"context"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths and translates it into
	// the format-agnostic model. Paths that do not exist are skipped; a
	// load over zero readable files yields an empty model, not an error.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
