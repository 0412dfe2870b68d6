package domain

import "go.trai.ch/zerr"

// DependencyGroup is a named section of the catalog (e.g., "Security", "Web").
type DependencyGroup struct {
	Name         string
	Dependencies []Dependency
}

// RuleSpec declares an implication in the catalog: when any trigger is resolved
// and the boot version is at least MinVersion, Implies is added.
type RuleSpec struct {
	Name       string
	Triggers   []string
	MinVersion string
	Implies    Dependency
}

// Metadata is the read-only dependency catalog a request is resolved against.
type Metadata struct {
	bootVersion string
	groups      []DependencyGroup
	index       map[string]Dependency
	rules       []RuleSpec
	digest      string
}

// NewMetadata builds a catalog. Dependency ids must be unique across groups,
// and every dependency and rule must be valid.
func NewMetadata(bootVersion string, groups []DependencyGroup, rules []RuleSpec, digest string) (*Metadata, error) {
	m := &Metadata{
		bootVersion: bootVersion,
		index:       make(map[string]Dependency),
		digest:      digest,
	}

	for _, g := range groups {
		for _, d := range g.Dependencies {
			if err := d.Validate(); err != nil {
				return nil, zerr.With(err, "group", g.Name)
			}
			if _, exists := m.index[d.ID]; exists {
				return nil, WithMeta(ErrDuplicateDependency, "id", d.ID)
			}
			m.index[d.ID] = d
		}
		m.groups = append(m.groups, DependencyGroup{
			Name:         g.Name,
			Dependencies: append([]Dependency(nil), g.Dependencies...),
		})
	}

	for _, r := range rules {
		if err := validateRuleSpec(r); err != nil {
			return nil, err
		}
		r.Triggers = append([]string(nil), r.Triggers...)
		m.rules = append(m.rules, r)
	}

	return m, nil
}

func validateRuleSpec(r RuleSpec) error {
	if len(r.Triggers) == 0 {
		return zerr.With(WithMeta(ErrInvalidRule, "reason", "no triggers"), "rule", r.Name)
	}
	if err := r.Implies.Validate(); err != nil {
		return zerr.With(zerr.Wrap(err, ErrInvalidRule.Error()), "rule", r.Name)
	}
	if r.MinVersion != "" {
		if _, err := ParseVersion(r.MinVersion); err != nil {
			return zerr.With(zerr.Wrap(err, ErrInvalidRule.Error()), "rule", r.Name)
		}
	}
	return nil
}

// DefaultBootVersion returns the boot version used when a request does not set one.
func (m *Metadata) DefaultBootVersion() string {
	return m.bootVersion
}

// Dependency looks up a catalog entry by id.
func (m *Metadata) Dependency(id string) (Dependency, bool) {
	d, ok := m.index[id]
	return d, ok
}

// Groups returns the catalog groups in declaration order.
func (m *Metadata) Groups() []DependencyGroup {
	out := make([]DependencyGroup, len(m.groups))
	copy(out, m.groups)
	return out
}

// Rules returns the implication rules declared in the catalog.
func (m *Metadata) Rules() []RuleSpec {
	out := make([]RuleSpec, len(m.rules))
	copy(out, m.rules)
	return out
}

// Len returns the number of dependencies in the catalog.
func (m *Metadata) Len() int {
	return len(m.index)
}

// Digest identifies the catalog content. It is empty for catalogs built in memory.
func (m *Metadata) Digest() string {
	return m.digest
}
