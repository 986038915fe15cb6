package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrNotConfigured = errors.New("no serving directory configured")
)

// Store is the byte-store behind the /files routes: named resources under
// a single serving directory.
type Store interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
	Configured() bool
}

type fileStore struct {
	directory string
}

func New(directory string) Store {
	return &fileStore{directory: directory}
}

func (st *fileStore) Configured() bool {
	return st.directory != ""
}

func (st *fileStore) Read(name string) ([]byte, error) {
	if !st.Configured() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	// Names are joined as-is; no traversal sanitization.
	data, err := os.ReadFile(filepath.Join(st.directory, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	return data, nil
}

func (st *fileStore) Write(name string, data []byte) error {
	if !st.Configured() {
		return ErrNotConfigured
	}

	if err := os.MkdirAll(st.directory, 0o755); err != nil {
		return fmt.Errorf("create serving directory: %w", err)
	}

	return os.WriteFile(filepath.Join(st.directory, name), data, 0o644)
}
