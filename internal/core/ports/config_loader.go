package ports

import "github.com/devindavies/barrelint/internal/core/domain"

// ConfigLoader defines the interface for loading the analysis configuration.
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the validated
	// configuration. A missing file yields the defaults, not an error.
	Load(path string) (domain.Config, error)
}
