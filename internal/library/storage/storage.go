// Package storage abstracts where the media library keeps uploaded files.
// Two backends are provided: a local uploads directory and an
// S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound indicates that no stored file exists for the given key.
var ErrObjectNotFound = errors.New("stored file not found")

// Storage reads and writes stored files addressed by slash-delimited keys
// relative to the backend's root.
type Storage interface {
	// Save writes the contents of r under key, overwriting an existing file.
	Save(ctx context.Context, key string, r io.Reader) error
	// Open returns a reader over the file stored under key.
	// A missing file reports ErrObjectNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Exists reports whether a file is stored under key.
	Exists(ctx context.Context, key string) (bool, error)
	// Delete removes the file stored under key. Deleting a missing file
	// reports ErrObjectNotFound.
	Delete(ctx context.Context, key string) error
	// URL returns the public URL of the file stored under key.
	URL(key string) string
}
