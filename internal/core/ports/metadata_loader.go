package ports

import "go.trai.ch/starter/internal/core/domain"

// MetadataLoader defines the interface for loading the dependency catalog.
//
//go:generate mockgen -source=metadata_loader.go -destination=mocks/mock_metadata_loader.go -package=mocks
type MetadataLoader interface {
	// Load reads the catalog at path.
	Load(path string) (*domain.Metadata, error)
}
