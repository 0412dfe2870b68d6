package ports

import "go.trai.ch/starter/internal/core/domain"

// VersionParser parses boot version strings.
//
//go:generate mockgen -source=version_parser.go -destination=mocks/mock_version_parser.go -package=mocks
type VersionParser interface {
	// Parse returns domain.ErrInvalidVersion for malformed input.
	Parse(s string) (domain.Version, error)
}
