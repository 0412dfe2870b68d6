package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/starter/internal/adapters/config"
	"go.trai.ch/starter/internal/adapters/logger"
	"go.trai.ch/starter/internal/core/ports"
)

// TracerNodeID is the unique identifier for the telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			if !settings.Trace {
				return NewOTelTracer(InstrumentationName), nil
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoggingTracer(log), nil
		},
	})
}
