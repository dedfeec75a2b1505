package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore keeps logo objects as flat files under a configured directory.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the storage directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) path(fileID string, size int) string {
	return filepath.Join(s.dir, ObjectName(fileID, size))
}

// Put stores an object. The declared content type is not recorded: the
// pipeline only ever stores webp and the serving handler sets the type.
func (s *LocalStore) Put(_ context.Context, fileID string, size int, data []byte, _ string) error {
	return os.WriteFile(s.path(fileID, size), data, 0o644)
}

// Get returns the stored object's bytes.
func (s *LocalStore) Get(_ context.Context, fileID string, size int) ([]byte, error) {
	data, err := os.ReadFile(s.path(fileID, size))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return data, nil
}

// PublicURL returns "" so callers stream the bytes directly.
func (s *LocalStore) PublicURL(string, int) string {
	return ""
}
