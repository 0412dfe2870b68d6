// Package versioncache implements a boot version parser backed by an LRU cache.
package versioncache

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/starter/internal/core/domain"
	"go.trai.ch/starter/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultSize is the number of distinct version strings kept in memory.
const DefaultSize = 256

var _ ports.VersionParser = (*Parser)(nil)

type entry struct {
	version domain.Version
	err     error
}

// Parser implements ports.VersionParser. Requests tend to reuse a handful of
// boot versions, so both parse results and failures are cached.
// It is safe for concurrent use.
type Parser struct {
	cache *lru.Cache[string, entry]
}

// NewParser creates a Parser holding up to size entries.
func NewParser(size int) (*Parser, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[string, entry](size)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create version cache")
	}
	return &Parser{cache: cache}, nil
}

// Parse returns the parsed version or domain.ErrInvalidVersion.
func (p *Parser) Parse(s string) (domain.Version, error) {
	key := strings.TrimSpace(s)
	if e, ok := p.cache.Get(key); ok {
		return cloneVersion(e.version), e.err
	}

	v, err := domain.ParseVersion(key)
	p.cache.Add(key, entry{version: v, err: err})
	return cloneVersion(v), err
}

// Len returns the number of cached entries.
func (p *Parser) Len() int {
	return p.cache.Len()
}

// cloneVersion copies the qualifier so callers cannot mutate a cached value.
func cloneVersion(v domain.Version) domain.Version {
	if v.Qualifier != nil {
		q := *v.Qualifier
		v.Qualifier = &q
	}
	return v
}
