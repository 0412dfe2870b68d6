package rules

import (
	"go.trai.ch/starter/internal/core/domain"
	"go.trai.ch/starter/internal/core/ports"
)

// Registry builds the ordered rule list for a catalog.
type Registry struct {
	parser ports.VersionParser
	logger ports.Logger
}

// NewRegistry creates a Registry whose rules share parser and logger.
func NewRegistry(parser ports.VersionParser, logger ports.Logger) *Registry {
	return &Registry{parser: parser, logger: logger}
}

// For returns the built-in rules followed by the rules metadata declares.
func (r *Registry) For(metadata *domain.Metadata) ([]ports.RequestPostProcessor, error) {
	return Compose(metadata, r.parser, r.logger)
}
