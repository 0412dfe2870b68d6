package domain

import "time"

// GenerationResult is the outcome of resolving and post-processing one request.
type GenerationResult struct {
	// RequestID is the id of the request that produced the result.
	RequestID string `json:"requestId"`

	// Name is the project name.
	Name string `json:"name"`

	// BootVersion is the boot version the request was resolved for.
	BootVersion string `json:"bootVersion"`

	// Fingerprint identifies the inputs (version, selections, catalog) the result was built from.
	Fingerprint string `json:"fingerprint"`

	// Dependencies is the final resolved dependency list, in resolution order.
	Dependencies []Dependency `json:"dependencies"`

	// Timestamp is when the result was produced.
	Timestamp time.Time `json:"timestamp"`

	// Cached is set when the result was served from the result store.
	Cached bool `json:"-"`
}
