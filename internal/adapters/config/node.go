package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/starter/internal/adapters/logger"
	"go.trai.ch/starter/internal/core/ports"
)

const (
	// SettingsNodeID is the unique identifier for the settings Graft node.
	SettingsNodeID graft.ID = "adapter.settings"
	// MetadataLoaderNodeID is the unique identifier for the catalog loader Graft node.
	MetadataLoaderNodeID graft.ID = "adapter.metadata_loader"
	// RequestLoaderNodeID is the unique identifier for the request loader Graft node.
	RequestLoaderNodeID graft.ID = "adapter.request_loader"
)

func init() {
	graft.Register(graft.Node[Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Settings, error) {
			return LoadSettings(DotEnvFile)
		},
	})

	graft.Register(graft.Node[ports.MetadataLoader]{
		ID:        MetadataLoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.MetadataLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.RequestLoader]{
		ID:        RequestLoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RequestLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
