// Package cas implements the content-addressed result store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/starter/internal/core/domain"
	"go.trai.ch/starter/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResultStore = (*Store)(nil)

// Store implements ports.ResultStore using one JSON file per fingerprint.
type Store struct {
	root string
}

// NewStore creates a Store rooted at dir. The directory is created on the first Put.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = domain.DefaultStorePath()
	}
	return &Store{root: filepath.Clean(dir)}
}

// Root returns the store directory.
func (s *Store) Root() string {
	return s.root
}

// Get retrieves the result stored under fingerprint. It returns nil, nil on a miss.
func (s *Store) Get(fingerprint string) (*domain.GenerationResult, error) {
	//nolint:gosec // Path is constructed from the store root and a hex fingerprint
	data, err := os.ReadFile(s.filename(fingerprint))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "fingerprint", fingerprint)
	}

	var result domain.GenerationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "fingerprint", fingerprint)
	}

	return &result, nil
}

// Put stores result under its fingerprint, replacing any previous entry.
func (s *Store) Put(result domain.GenerationResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.root, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", s.root)
	}

	// Write to a temporary file first so readers never observe a partial result.
	tmp, err := os.CreateTemp(s.root, result.Fingerprint+".*.tmp")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmpName, s.filename(result.Fingerprint)); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

// Clean removes the store directory and everything in it.
func (s *Store) Clean() error {
	if err := os.RemoveAll(s.root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove result store"), "path", s.root)
	}
	return nil
}

func (s *Store) filename(fingerprint string) string {
	return filepath.Join(s.root, fingerprint+".json")
}
