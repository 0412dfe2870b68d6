// Package render writes the dependency section of Maven and Gradle build files.
package render

import (
	"io"
	"slices"
	"strings"
	"text/template"

	"go.trai.ch/starter/internal/core/domain"
	"go.trai.ch/starter/internal/core/ports"
	"go.trai.ch/zerr"
)

// Supported build formats.
const (
	FormatMaven  = "maven"
	FormatGradle = "gradle"
)

var _ ports.BuildRenderer = (*Renderer)(nil)

const mavenTemplate = `<dependencies>
{{- range .}}
    <dependency>
        <groupId>{{.GroupID}}</groupId>
        <artifactId>{{.ArtifactID}}</artifactId>
{{- if .Version}}
        <version>{{.Version}}</version>
{{- end}}
{{- if .Scope}}
        <scope>{{.Scope}}</scope>
{{- end}}
{{- if .Optional}}
        <optional>true</optional>
{{- end}}
    </dependency>
{{- end}}
</dependencies>
`

const gradleTemplate = `dependencies {
{{- range .}}
    {{.Configuration}} '{{.Coordinates}}'
{{- end}}
}
`

// entry is the template view of one dependency.
type entry struct {
	GroupID       string
	ArtifactID    string
	Version       string
	Scope         string
	Optional      bool
	Configuration string
	Coordinates   string
}

// Renderer implements ports.BuildRenderer with text/template.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer creates a Renderer for the Maven and Gradle formats.
func NewRenderer() *Renderer {
	return &Renderer{
		templates: map[string]*template.Template{
			FormatMaven:  template.Must(template.New(FormatMaven).Option("missingkey=error").Parse(mavenTemplate)),
			FormatGradle: template.Must(template.New(FormatGradle).Option("missingkey=error").Parse(gradleTemplate)),
		},
	}
}

// Formats returns the supported format names in sorted order.
func (r *Renderer) Formats() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Render writes the dependencies of result to w in the given format.
// The format name is case-insensitive.
func (r *Renderer) Render(w io.Writer, format string, result *domain.GenerationResult) error {
	name := strings.ToLower(strings.TrimSpace(format))
	tmpl, ok := r.templates[name]
	if !ok {
		return domain.WithMeta(domain.ErrUnsupportedFormat, "format", format)
	}

	var deps []domain.Dependency
	if result != nil {
		deps = result.Dependencies
	}

	if err := tmpl.Execute(w, entries(deps)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "format", name)
	}
	return nil
}

func entries(deps []domain.Dependency) []entry {
	out := make([]entry, 0, len(deps))
	for _, d := range deps {
		scope, optional := mavenScope(d.Scope)
		coords := d.Coordinates()
		if d.Version != "" {
			coords += ":" + d.Version
		}
		out = append(out, entry{
			GroupID:       d.GroupID,
			ArtifactID:    d.ArtifactID,
			Version:       d.Version,
			Scope:         scope,
			Optional:      optional,
			Configuration: gradleConfiguration(d.Scope),
			Coordinates:   coords,
		})
	}
	return out
}

// mavenScope maps a scope to the <scope> element. Compile is Maven's default and is omitted.
func mavenScope(s domain.Scope) (scope string, optional bool) {
	switch s {
	case domain.ScopeRuntime:
		return "runtime", false
	case domain.ScopeCompileOnly:
		return "provided", true
	case domain.ScopeProvided:
		return "provided", false
	case domain.ScopeTest:
		return "test", false
	default:
		return "", false
	}
}

func gradleConfiguration(s domain.Scope) string {
	switch s {
	case domain.ScopeRuntime:
		return "runtimeOnly"
	case domain.ScopeCompileOnly:
		return "compileOnly"
	case domain.ScopeProvided:
		return "providedRuntime"
	case domain.ScopeTest:
		return "testImplementation"
	default:
		return "implementation"
	}
}
