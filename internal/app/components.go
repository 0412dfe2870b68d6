package app

import "go.trai.ch/starter/internal/core/ports"

// Components contains the initialized application components used by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	// MetadataPath is the catalog used when the command line does not name one.
	MetadataPath string
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, metadataPath string) *Components {
	return &Components{
		App:          app,
		Logger:       logger,
		MetadataPath: metadataPath,
	}
}
