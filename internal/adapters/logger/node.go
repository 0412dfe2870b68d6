package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/starter/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
// Nearly every other node depends on it, so it has no dependencies of its own.
// JSON output is switched on later, once settings are loaded.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run:       runNode,
	})
}

func runNode(_ context.Context) (ports.Logger, error) {
	return New(), nil
}
