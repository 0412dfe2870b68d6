package render

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/starter/internal/core/ports"
)

// NodeID is the unique identifier for the build renderer Graft node.
const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.BuildRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
