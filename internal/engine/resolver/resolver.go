// Package resolver expands the dependency ids selected by a request against the catalog.
package resolver

import (
	"strings"

	"go.trai.ch/starter/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver fills the resolved set of a request from the catalog.
type Resolver struct{}

// New creates a Resolver.
func New() *Resolver {
	return &Resolver{}
}

// Resolve adds the catalog entry of every selected id to req.Resolved, in selection order.
// A request without a boot version takes the catalog default.
// Unknown ids fail with domain.ErrUnknownDependency listing all of them.
func (r *Resolver) Resolve(req *domain.ProjectRequest, metadata *domain.Metadata) error {
	if req.BootVersion == "" {
		req.BootVersion = metadata.DefaultBootVersion()
	}
	if req.BootVersion == "" {
		return domain.WithMeta(domain.ErrMissingBootVersion, "request", req.Name)
	}

	if req.Resolved == nil {
		req.Resolved = domain.NewDependencySet()
	}

	var unknown []string
	for _, id := range req.Selected {
		d, ok := metadata.Dependency(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		req.Resolved.Add(d)
	}

	if len(unknown) > 0 {
		return zerr.With(domain.WithMeta(domain.ErrUnknownDependency, "id", strings.Join(unknown, ", ")), "request", req.Name)
	}
	return nil
}
