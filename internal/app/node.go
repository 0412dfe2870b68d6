package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/starter/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/starter/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/starter/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/starter/internal/adapters/render"    //nolint:depguard // Wired in app layer
	"go.trai.ch/starter/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/starter/internal/core/ports"
	"go.trai.ch/starter/internal/engine/resolver"
	"go.trai.ch/starter/internal/rules"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// jsonSwitcher is implemented by loggers that support JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.MetadataLoaderNodeID,
			config.RequestLoaderNodeID,
			resolver.NodeID,
			rules.NodeID,
			cas.NodeID,
			render.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	metadataLoader, err := graft.Dep[ports.MetadataLoader](ctx)
	if err != nil {
		return nil, err
	}

	requestLoader, err := graft.Dep[ports.RequestLoader](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*rules.Registry](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ResultStore](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.BuildRenderer](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(metadataLoader, requestLoader, res, registry, store, renderer, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[config.Settings](ctx)
	if err != nil {
		return nil, err
	}

	if s, ok := log.(jsonSwitcher); ok {
		s.SetJSON(settings.JSONLogs)
	}

	return NewComponents(app, log, settings.MetadataPath), nil
}
