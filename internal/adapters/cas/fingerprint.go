package cas

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/starter/internal/core/domain"
)

// Fingerprint identifies the inputs of a generation: the boot version, the selected
// dependency ids, the catalog digest and the rule digest. Selection order does not matter.
func Fingerprint(bootVersion string, selected []string, catalogDigest, ruleDigest string) string {
	ids := slices.Clone(selected)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	h := xxhash.New()
	_, _ = h.WriteString(bootVersion)
	_, _ = h.WriteString("\x00")
	for _, id := range ids {
		_, _ = h.WriteString(id)
		_, _ = h.WriteString("\x00")
	}
	_, _ = h.WriteString(catalogDigest)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(ruleDigest)

	return fmt.Sprintf("%016x", h.Sum64())
}

// CatalogDigest returns the content digest of metadata. Catalogs built in memory
// carry none, so one is computed from the default boot version and every dependency.
func CatalogDigest(metadata *domain.Metadata) string {
	if metadata == nil {
		return ""
	}
	if d := metadata.Digest(); d != "" {
		return d
	}

	h := xxhash.New()
	_, _ = h.WriteString(metadata.DefaultBootVersion())
	_, _ = h.WriteString("\x00")
	for _, g := range metadata.Groups() {
		_, _ = h.WriteString(g.Name)
		_, _ = h.WriteString("\x00")
		for _, d := range g.Dependencies {
			writeDependency(h, d)
		}
	}
	for _, r := range metadata.Rules() {
		writeRule(h, r)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// RuleDigest identifies an ordered rule list. Any change to a rule's name, triggers,
// minimum version or implied dependency, or to the order, yields a new digest.
func RuleDigest(specs []domain.RuleSpec) string {
	h := xxhash.New()
	for _, r := range specs {
		writeRule(h, r)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func writeRule(h *xxhash.Digest, r domain.RuleSpec) {
	_, _ = h.WriteString(r.Name)
	_, _ = h.WriteString("\x00")
	for _, t := range r.Triggers {
		_, _ = h.WriteString(t)
		_, _ = h.WriteString(",")
	}
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(r.MinVersion)
	_, _ = h.WriteString("\x00")
	writeDependency(h, r.Implies)
	_, _ = h.WriteString("\x01")
}

func writeDependency(h *xxhash.Digest, d domain.Dependency) {
	for _, s := range []string{d.ID, d.GroupID, d.ArtifactID, d.Version, strconv.Itoa(int(d.Scope))} {
		_, _ = h.WriteString(s)
		_, _ = h.WriteString("\x00")
	}
}
