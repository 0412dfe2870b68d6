// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/starter/internal/adapters/cas"
	_ "go.trai.ch/starter/internal/adapters/config"
	_ "go.trai.ch/starter/internal/adapters/logger"
	_ "go.trai.ch/starter/internal/adapters/render"
	_ "go.trai.ch/starter/internal/adapters/telemetry"
	_ "go.trai.ch/starter/internal/adapters/versioncache"
	// Register app, engine and rule nodes.
	_ "go.trai.ch/starter/internal/app"
	_ "go.trai.ch/starter/internal/engine/resolver"
	_ "go.trai.ch/starter/internal/rules"
)
