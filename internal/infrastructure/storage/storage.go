// Package storage persists club logo objects. Two backends exist: the
// local filesystem (bytes are streamed by the API itself) and MinIO
// object storage (the API redirects to the object's public URL). Which
// one is active is a deployment choice, not two behaviors to mix.
package storage

import (
	"context"
	"errors"
	"strconv"
)

// ErrObjectNotFound is returned when a stored object does not exist.
var ErrObjectNotFound = errors.New("object not found")

// FullSize selects the full-resolution object rather than a thumbnail.
const FullSize = 0

// LogoStore persists and serves logo objects addressed by file id plus an
// optional size variant.
type LogoStore interface {
	// Put stores an object. size is FullSize for the original or the
	// thumbnail bound in pixels for a variant.
	Put(ctx context.Context, fileID string, size int, data []byte, contentType string) error
	// Get returns the stored object's bytes for direct streaming.
	Get(ctx context.Context, fileID string, size int) ([]byte, error)
	// PublicURL returns an externally reachable URL for the object, or ""
	// when the backend serves bytes directly.
	PublicURL(fileID string, size int) string
}

// ObjectName derives the deterministic object name for a file id and size
// variant ("<id>" for the full image, "<id>-<size>" for a thumbnail).
func ObjectName(fileID string, size int) string {
	if size == FullSize {
		return fileID
	}
	return fileID + "-" + strconv.Itoa(size)
}
