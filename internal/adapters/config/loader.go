// Package config provides the catalog, request and settings loaders for starter.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	toml "github.com/pelletier/go-toml/v2"
	"go.trai.ch/starter/internal/core/domain"
	"go.trai.ch/starter/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	_ ports.MetadataLoader = (*Loader)(nil)
	_ ports.RequestLoader  = (*Loader)(nil)
)

// Format is the encoding of a catalog or request file.
type Format string

const (
	// FormatYAML is selected by the .yaml and .yml extensions.
	FormatYAML Format = "yaml"
	// FormatTOML is selected by the .toml extension.
	FormatTOML Format = "toml"
)

// Loader implements ports.MetadataLoader and ports.RequestLoader on top of YAML and TOML files.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// FormatFor selects the decoder for path based on its extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", domain.WithMeta(domain.ErrUnsupportedMetadataFormat, "path", path)
	}
}

// Load reads the catalog at path. An empty path selects starter.yaml in the working directory.
func (l *Loader) Load(path string) (*domain.Metadata, error) {
	if path == "" {
		path = domain.MetadataFileName
	}

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataReadFailed.Error()), "path", path)
	}

	var file MetadataFile
	if err := decode(format, data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataParseFailed.Error()), "path", path)
	}

	groups, err := toGroups(file.Dependencies)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	rules, err := toRuleSpecs(file.Rules)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	metadata, err := domain.NewMetadata(strings.TrimSpace(file.BootVersion), groups, rules, Digest(data))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if metadata.Len() == 0 && l.Logger != nil {
		l.Logger.Warn(fmt.Sprintf("catalog %s declares no dependencies", path))
	}

	return metadata, nil
}

// LoadRequest reads the request file at path.
func (l *Loader) LoadRequest(path string) (*domain.ProjectRequest, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRequestReadFailed.Error()), "path", path)
	}

	var file RequestFile
	if err := decode(format, data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRequestParseFailed.Error()), "path", path)
	}

	name := file.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return domain.NewProjectRequest("", name, file.BootVersion, file.Dependencies), nil
}

// Digest returns the xxhash of data as a fixed-width hex string.
func Digest(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

func decode(format Format, data []byte, out any) error {
	if format == FormatTOML {
		return toml.Unmarshal(data, out)
	}
	return yaml.Unmarshal(data, out)
}

func toGroups(dtos []GroupDTO) ([]domain.DependencyGroup, error) {
	groups := make([]domain.DependencyGroup, 0, len(dtos))
	for _, g := range dtos {
		deps := make([]domain.Dependency, 0, len(g.Content))
		for _, dto := range g.Content {
			d, err := toDependency(dto)
			if err != nil {
				return nil, zerr.With(err, "group", g.Name)
			}
			deps = append(deps, d)
		}
		groups = append(groups, domain.DependencyGroup{Name: g.Name, Dependencies: deps})
	}
	return groups, nil
}

func toRuleSpecs(dtos []RuleDTO) ([]domain.RuleSpec, error) {
	specs := make([]domain.RuleSpec, 0, len(dtos))
	for _, r := range dtos {
		implies, err := toDependency(r.Implies)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidRule.Error()), "rule", r.Name)
		}
		specs = append(specs, domain.RuleSpec{
			Name:       r.Name,
			Triggers:   domain.NormalizeIDs(r.Triggers),
			MinVersion: strings.TrimSpace(r.MinVersion),
			Implies:    implies,
		})
	}
	return specs, nil
}

func toDependency(dto DependencyDTO) (domain.Dependency, error) {
	scope, err := domain.ParseScope(strings.TrimSpace(dto.Scope))
	if err != nil {
		return domain.Dependency{}, zerr.With(err, "id", dto.ID)
	}
	d, err := domain.NewDependency(dto.ID, dto.GroupID, dto.ArtifactID, scope)
	if err != nil {
		return domain.Dependency{}, err
	}
	d.Version = strings.TrimSpace(dto.Version)
	return d, nil
}
