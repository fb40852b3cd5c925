package scanner

import (
	"context"

	"github.com/devindavies/barrelint/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the source scanner Graft node.
const NodeID graft.ID = "adapter.source_scanner"

func init() {
	graft.Register(graft.Node[ports.SourceScanner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceScanner, error) {
			return New(), nil
		},
	})
}
