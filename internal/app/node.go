package app

import (
	"context"

	"github.com/grindlemire/graft"

	configadapter "github.com/devindavies/barrelint/internal/adapters/config"
	loggeradapter "github.com/devindavies/barrelint/internal/adapters/logger"
	resolveradapter "github.com/devindavies/barrelint/internal/adapters/resolver"
	scanneradapter "github.com/devindavies/barrelint/internal/adapters/scanner"
	"github.com/devindavies/barrelint/internal/core/ports"
)

// Components bundles the fully wired application.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			configadapter.NodeID,
			loggeradapter.NodeID,
			resolveradapter.NodeID,
			scanneradapter.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.ModuleResolver](ctx)
			if err != nil {
				return nil, err
			}
			scanner, err := graft.Dep[ports.SourceScanner](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(loader, resolver, scanner, log),
				Logger: log,
			}, nil
		},
	})
}
