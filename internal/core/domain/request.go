package domain

import "strings"

// ProjectRequest is one in-flight generation request.
// A request is owned by a single goroutine for its whole lifetime.
type ProjectRequest struct {
	// ID identifies the request in logs and stored results.
	ID string

	// Name is the project name, used as the artifact id of the generated build file.
	Name string

	// BootVersion is the raw target platform version as supplied by the user.
	BootVersion string

	// Selected holds the dependency ids chosen by the user, de-duplicated, in order.
	Selected []string

	// Resolved is the resolved dependency set. Post-processing rules add to it.
	Resolved *DependencySet
}

// NewProjectRequest creates a request with normalized selections and an empty resolved set.
func NewProjectRequest(id, name, bootVersion string, selected []string) *ProjectRequest {
	return &ProjectRequest{
		ID:          id,
		Name:        strings.TrimSpace(name),
		BootVersion: strings.TrimSpace(bootVersion),
		Selected:    NormalizeIDs(selected),
		Resolved:    NewDependencySet(),
	}
}

// NormalizeIDs trims ids, drops empty ones and removes duplicates while keeping the first occurrence.
// Comma-separated entries are split, so both "a,b" and ["a", "b"] are accepted.
func NormalizeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, raw := range ids {
		for _, id := range strings.Split(raw, ",") {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
