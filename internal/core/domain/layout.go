package domain

import "path/filepath"

const (
	// StarterDirName is the name of the internal state directory.
	StarterDirName = ".starter"

	// StoreDirName is the name of the result store directory.
	StoreDirName = "store"

	// MetadataFileName is the default name of the catalog file.
	MetadataFileName = "starter.yaml"

	// DefaultProjectName is used when a request does not name its project.
	DefaultProjectName = "demo"

	// DefaultGroupID is the group id of generated projects.
	DefaultGroupID = "com.example"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the default path for the result store.
// It joins .starter and store.
func DefaultStorePath() string {
	return filepath.Join(StarterDirName, StoreDirName)
}
