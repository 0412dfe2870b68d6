// Package rules holds the post-processing rules applied to resolved requests.
package rules

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/starter/internal/core/domain"
	"go.trai.ch/starter/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RequestPostProcessor = (*Implied)(nil)

// Implied adds one dependency to a request when any trigger id is resolved
// and the boot version is at least the minimum.
// It holds no per-request state and is safe for concurrent use on distinct requests.
type Implied struct {
	spec    domain.RuleSpec
	minimum *domain.Version
	parser  ports.VersionParser
	logger  ports.Logger
}

// NewImplied builds a rule from spec. An empty MinVersion applies the rule to every boot version.
// The rule name defaults to the implied dependency id.
func NewImplied(spec domain.RuleSpec, parser ports.VersionParser, logger ports.Logger) (*Implied, error) {
	spec.Triggers = domain.NormalizeIDs(spec.Triggers)
	spec.MinVersion = strings.TrimSpace(spec.MinVersion)
	if spec.Name == "" {
		spec.Name = spec.Implies.ID
	}

	if len(spec.Triggers) == 0 {
		return nil, zerr.With(domain.WithMeta(domain.ErrInvalidRule, "reason", "no triggers"), "rule", spec.Name)
	}
	if err := spec.Implies.Validate(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidRule.Error()), "rule", spec.Name)
	}
	if parser == nil {
		return nil, zerr.With(domain.WithMeta(domain.ErrInvalidRule, "reason", "no version parser"), "rule", spec.Name)
	}

	r := &Implied{spec: spec, parser: parser, logger: logger}
	if spec.MinVersion != "" {
		v, err := parser.Parse(spec.MinVersion)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidRule.Error()), "rule", spec.Name)
		}
		r.minimum = &v
	}
	return r, nil
}

// Name returns the rule name.
func (r *Implied) Name() string {
	return r.spec.Name
}

// Describe returns the declaration the rule was built from.
func (r *Implied) Describe() domain.RuleSpec {
	spec := r.spec
	spec.Triggers = slices.Clone(r.spec.Triggers)
	return spec
}

// Apply adds the implied dependency when the rule matches. It is a no-op when the
// dependency is already resolved, so applying it twice equals applying it once.
// An unparsable boot version counts as not matching and is logged as a warning.
func (r *Implied) Apply(req *domain.ProjectRequest, _ *domain.Metadata) {
	if req == nil || req.Resolved == nil {
		return
	}
	if !req.Resolved.HasAny(r.spec.Triggers...) || req.Resolved.Has(r.spec.Implies.ID) {
		return
	}
	if !r.versionMatches(req.BootVersion) {
		return
	}
	req.Resolved.Add(r.spec.Implies)
}

func (r *Implied) versionMatches(bootVersion string) bool {
	if r.minimum == nil {
		return true
	}
	v, err := r.parser.Parse(bootVersion)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn(fmt.Sprintf("rule %s skipped: invalid boot version %q", r.spec.Name, bootVersion))
		}
		return false
	}
	return v.AtLeast(*r.minimum)
}
