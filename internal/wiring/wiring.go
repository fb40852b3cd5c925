// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/devindavies/barrelint/internal/adapters/config"
	_ "github.com/devindavies/barrelint/internal/adapters/logger"
	_ "github.com/devindavies/barrelint/internal/adapters/resolver"
	_ "github.com/devindavies/barrelint/internal/adapters/scanner"
	// Register the app node.
	_ "github.com/devindavies/barrelint/internal/app"
)
