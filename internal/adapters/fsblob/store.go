// Package fsblob stores attachment blobs on the local filesystem. Keys are
// opaque and generated by the caller; they map to files under the root
// directory, sharded by the first two characters to keep directories small.
package fsblob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no blob exists under a key.
var ErrNotFound = errors.New("blob not found")

// Store is a filesystem-backed blob store rooted at a single directory.
type Store struct {
	root string
}

// NewStore creates the root directory if needed and returns a store.
func NewStore(root string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("fsblob: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("fsblob: create root: %w", err)
	}
	return &Store{root: root}, nil
}

// Put writes the reader's bytes under key and returns the size written.
// An existing blob under the same key is replaced.
func (s *Store) Put(_ context.Context, key string, r io.Reader) (int64, error) {
	path, err := s.path(key)
	if err != nil {
		return 0, err
	}
	if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
		return 0, fmt.Errorf("fsblob: create shard dir: %w", mkErr)
	}

	// Write to a temp file first so a failed upload never leaves a partial
	// blob under the final key.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return 0, fmt.Errorf("fsblob: create temp file: %w", err)
	}
	n, copyErr := io.Copy(tmp, r)
	closeErr := tmp.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tmp.Name())
		return 0, fmt.Errorf("fsblob: write blob: %w", errors.Join(copyErr, closeErr))
	}
	if renameErr := os.Rename(tmp.Name(), path); renameErr != nil {
		_ = os.Remove(tmp.Name())
		return 0, fmt.Errorf("fsblob: finalize blob: %w", renameErr)
	}
	return n, nil
}

// Open returns a reader over the blob's bytes.
func (s *Store) Open(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fsblob: open blob: %w", err)
	}
	return f, nil
}

// Delete removes the blob. Deleting a missing key is not an error.
func (s *Store) Delete(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		return fmt.Errorf("fsblob: delete blob: %w", rmErr)
	}
	return nil
}

// path validates the key and maps it into the sharded layout. Keys are
// uuid-like tokens; anything with path separators or traversal is rejected.
func (s *Store) path(key string) (string, error) {
	if len(key) < 2 || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("fsblob: invalid key %q", key)
	}
	return filepath.Join(s.root, key[:2], key), nil
}
