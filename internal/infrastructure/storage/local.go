// Package storage keeps ticket attachment blobs on local disk or in an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/opsdesk-inc/opsdesk/internal/domain/attachment"
)

var _ attachment.Store = (*LocalStore)(nil)

// LocalStore writes objects below Root using the object path as the relative file path.
type LocalStore struct {
	Root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}
	return &LocalStore{Root: abs}, nil
}

func (s *LocalStore) resolve(objectPath string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(objectPath, "/")))
	full := filepath.Join(s.Root, clean)
	if full != s.Root && !strings.HasPrefix(full, s.Root+string(os.PathSeparator)) {
		return "", fmt.Errorf("object path %q escapes storage root", objectPath)
	}
	return full, nil
}

func (s *LocalStore) Save(ctx context.Context, objectPath string, r io.Reader, size int64, contentType string) error {
	full, err := s.resolve(objectPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	f, err := os.OpenFile(full, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", objectPath, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return fmt.Errorf("failed to write %s: %w", objectPath, err)
	}
	return f.Close()
}

// Delete treats a missing file as already deleted.
func (s *LocalStore) Delete(ctx context.Context, objectPath string) error {
	full, err := s.resolve(objectPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", objectPath, err)
	}
	return nil
}

func (s *LocalStore) Open(ctx context.Context, objectPath string) (io.ReadCloser, error) {
	full, err := s.resolve(objectPath)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", objectPath, err)
	}
	return f, nil
}
