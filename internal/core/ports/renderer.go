package ports

import (
	"io"

	"go.trai.ch/starter/internal/core/domain"
)

// BuildRenderer writes the dependency section of a build file.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type BuildRenderer interface {
	// Render writes result in the given format ("maven" or "gradle") to w.
	Render(w io.Writer, format string, result *domain.GenerationResult) error
}
