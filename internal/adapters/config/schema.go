package config

// MetadataFile represents the structure of the starter.yaml (or starter.toml) catalog.
type MetadataFile struct {
	BootVersion  string     `yaml:"bootVersion" toml:"bootVersion"`
	Dependencies []GroupDTO `yaml:"dependencies" toml:"dependencies"`
	Rules        []RuleDTO  `yaml:"rules" toml:"rules"`
}

// GroupDTO represents a named group of dependencies in the catalog.
type GroupDTO struct {
	Name    string          `yaml:"name" toml:"name"`
	Content []DependencyDTO `yaml:"content" toml:"content"`
}

// DependencyDTO represents a dependency definition in the catalog.
type DependencyDTO struct {
	ID         string `yaml:"id" toml:"id"`
	GroupID    string `yaml:"groupId" toml:"groupId"`
	ArtifactID string `yaml:"artifactId" toml:"artifactId"`
	Version    string `yaml:"version" toml:"version"`
	Scope      string `yaml:"scope" toml:"scope"`
}

// RuleDTO represents an implication rule declared in the catalog.
type RuleDTO struct {
	Name       string        `yaml:"name" toml:"name"`
	Triggers   []string      `yaml:"triggers" toml:"triggers"`
	MinVersion string        `yaml:"minVersion" toml:"minVersion"`
	Implies    DependencyDTO `yaml:"implies" toml:"implies"`
}

// RequestFile represents a generation request file.
type RequestFile struct {
	Name         string   `yaml:"name" toml:"name"`
	BootVersion  string   `yaml:"bootVersion" toml:"bootVersion"`
	Dependencies []string `yaml:"dependencies" toml:"dependencies"`
}
