package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/wpmvc/helpers/internal/constants"
)

// Local keeps stored files below a root directory on the local filesystem
// and serves them under a public base URL.
type Local struct {
	// root is the uploads root directory.
	root string
	// baseURL is the public URL prefix, without a trailing slash.
	baseURL string
}

// NewLocal creates a local backend rooted at the given uploads directory.
// The directory is created when absent.
func NewLocal(root, baseURL string) (*Local, error) {
	if err := os.MkdirAll(root, constants.DefaultFolderPermissions); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	return &Local{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes the contents of r under key, creating parent directories as needed.
func (l *Local) Save(_ context.Context, key string, r io.Reader) error {
	filePath := l.filePath(key)

	if err := os.MkdirAll(filepath.Dir(filePath), constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(filepath.Clean(filePath), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err = io.Copy(file, r); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	return nil
}

// Open returns a reader over the file stored under key.
func (l *Local) Open(_ context.Context, key string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Clean(l.filePath(key)))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Exists reports whether a file is stored under key.
func (l *Local) Exists(_ context.Context, key string) (bool, error) {
	stat, err := os.Stat(l.filePath(key))
	if err == nil {
		return !stat.IsDir(), nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, fmt.Errorf("failed to stat file: %w", err)
}

// Delete removes the file stored under key.
func (l *Local) Delete(_ context.Context, key string) error {
	err := os.Remove(l.filePath(key))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}

	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// URL returns the public URL of the file stored under key.
func (l *Local) URL(key string) string {
	return l.baseURL + "/" + strings.TrimLeft(path.Clean(key), "/")
}

// filePath maps a storage key onto the local filesystem.
func (l *Local) filePath(key string) string {
	return filepath.Join(l.root, filepath.FromSlash(key))
}
