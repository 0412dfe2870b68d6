package ports

import "go.trai.ch/starter/internal/core/domain"

// RequestLoader defines the interface for reading generation requests from files.
//
//go:generate mockgen -source=request_loader.go -destination=mocks/mock_request_loader.go -package=mocks
type RequestLoader interface {
	// LoadRequest reads the request file at path. The returned request has no id
	// and an empty resolved set.
	LoadRequest(path string) (*domain.ProjectRequest, error)
}
