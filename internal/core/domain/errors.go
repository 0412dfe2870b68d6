package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidVersion is returned when a version string does not match major.minor.patch[.qualifier].
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidScope is returned when a dependency scope is not one of the known scopes.
	ErrInvalidScope = zerr.New("invalid dependency scope")

	// ErrInvalidDependency is returned when a dependency is missing its id or coordinates.
	ErrInvalidDependency = zerr.New("invalid dependency")

	// ErrDuplicateDependency is returned when the catalog declares the same dependency id twice.
	ErrDuplicateDependency = zerr.New("duplicate dependency id")

	// ErrUnknownDependency is returned when a request selects an id the catalog does not know.
	ErrUnknownDependency = zerr.New("unknown dependency")

	// ErrMissingBootVersion is returned when neither the request nor the catalog provides a boot version.
	ErrMissingBootVersion = zerr.New("missing boot version")

	// ErrInvalidRule is returned when a catalog rule is missing triggers or an implied dependency.
	ErrInvalidRule = zerr.New("invalid rule")

	// ErrRuleFailed is returned when a post-processing rule panics.
	ErrRuleFailed = zerr.New("rule failed")

	// ErrMetadataReadFailed is returned when the metadata file cannot be read.
	ErrMetadataReadFailed = zerr.New("failed to read metadata file")

	// ErrMetadataParseFailed is returned when the metadata file cannot be parsed.
	ErrMetadataParseFailed = zerr.New("failed to parse metadata file")

	// ErrUnsupportedMetadataFormat is returned when the metadata file extension is neither YAML nor TOML.
	ErrUnsupportedMetadataFormat = zerr.New("unsupported metadata format, expected .yaml, .yml or .toml")

	// ErrRequestReadFailed is returned when a request file cannot be read.
	ErrRequestReadFailed = zerr.New("failed to read request file")

	// ErrRequestParseFailed is returned when a request file cannot be parsed.
	ErrRequestParseFailed = zerr.New("failed to parse request file")

	// ErrNoRequests is returned when generate is called without any request.
	ErrNoRequests = zerr.New("no requests specified")

	// ErrUnsupportedFormat is returned when the build file format is unknown.
	ErrUnsupportedFormat = zerr.New("unsupported build format, expected 'maven' or 'gradle'")

	// ErrRenderFailed is returned when the build file cannot be rendered.
	ErrRenderFailed = zerr.New("failed to render build file")

	// ErrStoreCreateFailed is returned when the result store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create result store directory")

	// ErrStoreReadFailed is returned when a stored result cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read generation result")

	// ErrStoreUnmarshalFailed is returned when a stored result cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal generation result")

	// ErrStoreMarshalFailed is returned when a result cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal generation result")

	// ErrStoreWriteFailed is returned when a result cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write generation result")

	// ErrGenerationFailed is returned when at least one request of a batch fails.
	ErrGenerationFailed = zerr.New("generation failed")
)

// WithMeta attaches a key-value pair to err and keeps err matchable with errors.Is.
// zerr.With copies a bare *zerr.Error, which breaks identity checks against sentinels,
// so the sentinel is wrapped first.
func WithMeta(err error, key string, value any) error {
	return zerr.With(zerr.Wrap(err, ""), key, value)
}
