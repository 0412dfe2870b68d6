package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Scope is the build-time visibility of a dependency.
type Scope uint8

const (
	// ScopeCompile makes the dependency available at compile time and runtime.
	ScopeCompile Scope = iota
	// ScopeRuntime makes the dependency available at runtime only.
	ScopeRuntime
	// ScopeCompileOnly makes the dependency available at compile time only.
	ScopeCompileOnly
	// ScopeProvided marks the dependency as supplied by the runtime container.
	ScopeProvided
	// ScopeTest makes the dependency available to tests only.
	ScopeTest
)

var scopeNames = [...]string{
	ScopeCompile:     "compile",
	ScopeRuntime:     "runtime",
	ScopeCompileOnly: "compileOnly",
	ScopeProvided:    "provided",
	ScopeTest:        "test",
}

// ParseScope converts a scope name into a Scope.
// An empty name is treated as compile.
func ParseScope(s string) (Scope, error) {
	if s == "" {
		return ScopeCompile, nil
	}
	for i, name := range scopeNames {
		if strings.EqualFold(name, s) {
			return Scope(i), nil
		}
	}
	return ScopeCompile, WithMeta(ErrInvalidScope, "scope", s)
}

// String returns the canonical scope name.
func (s Scope) String() string {
	if int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s Scope) MarshalText() ([]byte, error) {
	if int(s) >= len(scopeNames) {
		return nil, WithMeta(ErrInvalidScope, "scope", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scope) UnmarshalText(text []byte) error {
	parsed, err := ParseScope(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Dependency is an entry of the catalog or an entry added by a rule.
// It is a value type: copies never alias.
type Dependency struct {
	// ID is the catalog-wide unique identifier (e.g., "security").
	ID string `json:"id"`

	// GroupID is the Maven group coordinate.
	GroupID string `json:"groupId"`

	// ArtifactID is the Maven artifact coordinate.
	ArtifactID string `json:"artifactId"`

	// Version pins the artifact version. Empty means managed by the platform BOM.
	Version string `json:"version,omitempty"`

	// Scope is the build-time visibility of the dependency.
	Scope Scope `json:"scope"`
}

// NewDependency creates a Dependency after validating its id and coordinates.
func NewDependency(id, groupID, artifactID string, scope Scope) (Dependency, error) {
	d := Dependency{
		ID:         strings.TrimSpace(id),
		GroupID:    strings.TrimSpace(groupID),
		ArtifactID: strings.TrimSpace(artifactID),
		Scope:      scope,
	}
	if err := d.Validate(); err != nil {
		return Dependency{}, err
	}
	return d, nil
}

// MustDependency is like NewDependency but panics on invalid input.
// It is meant for package-level definitions.
func MustDependency(id, groupID, artifactID string, scope Scope) Dependency {
	d, err := NewDependency(id, groupID, artifactID, scope)
	if err != nil {
		panic(err)
	}
	return d
}

// Validate checks that the dependency carries an id, both coordinates and a known scope.
func (d Dependency) Validate() error {
	switch {
	case d.ID == "":
		return WithMeta(ErrInvalidDependency, "reason", "missing id")
	case d.GroupID == "":
		return zerr.With(WithMeta(ErrInvalidDependency, "reason", "missing groupId"), "id", d.ID)
	case d.ArtifactID == "":
		return zerr.With(WithMeta(ErrInvalidDependency, "reason", "missing artifactId"), "id", d.ID)
	case int(d.Scope) >= len(scopeNames):
		return zerr.With(WithMeta(ErrInvalidScope, "scope", int(d.Scope)), "id", d.ID)
	}
	return nil
}

// Coordinates returns the groupId:artifactId pair.
func (d Dependency) Coordinates() string {
	return d.GroupID + ":" + d.ArtifactID
}

// DependencySet is an ordered collection of dependencies, unique by id.
// The zero value is ready to use. It is not safe for concurrent mutation.
type DependencySet struct {
	items []Dependency
	index map[string]int
}

// NewDependencySet creates a set holding the given dependencies in order.
// Later duplicates of an id are ignored.
func NewDependencySet(deps ...Dependency) *DependencySet {
	s := &DependencySet{}
	for _, d := range deps {
		s.Add(d)
	}
	return s
}

// Add appends d unless a dependency with the same id is present.
// It reports whether the set changed.
func (s *DependencySet) Add(d Dependency) bool {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[d.ID]; ok {
		return false
	}
	s.index[d.ID] = len(s.items)
	s.items = append(s.items, d)
	return true
}

// Has reports whether a dependency with the given id is present.
func (s *DependencySet) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// HasAny reports whether any of the given ids is present.
func (s *DependencySet) HasAny(ids ...string) bool {
	for _, id := range ids {
		if s.Has(id) {
			return true
		}
	}
	return false
}

// Get returns the dependency with the given id.
func (s *DependencySet) Get(id string) (Dependency, bool) {
	i, ok := s.index[id]
	if !ok {
		return Dependency{}, false
	}
	return s.items[i], true
}

// Len returns the number of dependencies in the set.
func (s *DependencySet) Len() int {
	return len(s.items)
}

// All returns a copy of the dependencies in insertion order.
func (s *DependencySet) All() []Dependency {
	out := make([]Dependency, len(s.items))
	copy(out, s.items)
	return out
}

// IDs returns the dependency ids in insertion order.
func (s *DependencySet) IDs() []string {
	ids := make([]string, len(s.items))
	for i, d := range s.items {
		ids[i] = d.ID
	}
	return ids
}
