package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths, merges it over the
	// defaults in file order, and returns the resulting model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
