package ports

import "go.trai.ch/starter/internal/core/domain"

// ResultStore defines the interface for storing and retrieving generation results.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ResultStore interface {
	// Get retrieves the result for a fingerprint.
	// Returns nil, nil if not found.
	Get(fingerprint string) (*domain.GenerationResult, error)

	// Put stores the result under its fingerprint.
	Put(result domain.GenerationResult) error

	// Clean removes every stored result.
	Clean() error
}
