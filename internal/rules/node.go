package rules

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/starter/internal/adapters/logger"
	"go.trai.ch/starter/internal/adapters/versioncache"
	"go.trai.ch/starter/internal/core/ports"
)

// NodeID is the unique identifier for the rule registry Graft node.
const NodeID graft.ID = "rules.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{versioncache.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			parser, err := graft.Dep[ports.VersionParser](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(parser, log), nil
		},
	})
}
