package ports

import "go.trai.ch/starter/internal/core/domain"

// RequestPostProcessor is a rule that runs once per request after resolution.
// Implementations may only add to the resolved set and must not block.
// They must be safe to call concurrently on distinct requests.
//
//go:generate mockgen -source=post_processor.go -destination=mocks/mock_post_processor.go -package=mocks
type RequestPostProcessor interface {
	// Name identifies the rule in logs and spans.
	Name() string

	// Apply inspects the request and may add dependencies to its resolved set.
	Apply(req *domain.ProjectRequest, metadata *domain.Metadata)
}
