package versioncache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/starter/internal/adapters/config"
	"go.trai.ch/starter/internal/core/ports"
)

// NodeID is the unique identifier for the version parser Graft node.
const NodeID graft.ID = "adapter.version_parser"

func init() {
	graft.Register(graft.Node[ports.VersionParser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.VersionParser, error) {
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewParser(settings.VersionCacheSize)
		},
	})
}
