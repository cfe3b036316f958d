// Package storage keeps uploaded file bodies on a filesystem.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/file"
	apperrors "github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

var _ file.BlobStore = (*BlobStore)(nil)

// BlobStore writes each body to root/<first two chars of id>/<id>.
type BlobStore struct {
	fs   afero.Fs
	root string
}

// NewLocalBlobStore stores bodies on the OS filesystem under root.
func NewLocalBlobStore(root string) (*BlobStore, error) {
	fs := afero.NewOsFs()
	if err := fs.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &BlobStore{fs: fs, root: root}, nil
}

// NewBlobStore stores bodies on fs, typically afero.NewMemMapFs in tests.
func NewBlobStore(fs afero.Fs, root string) *BlobStore {
	return &BlobStore{fs: fs, root: root}
}

func (s *BlobStore) path(id string) (string, error) {
	if len(id) < 3 || strings.ContainsAny(id, "/\\.") {
		return "", apperrors.NewValidationError("invalid file id")
	}
	return filepath.Join(s.root, id[:2], id), nil
}

func (s *BlobStore) Put(ctx context.Context, id string, r io.Reader, limit int64) (int64, error) {
	p, err := s.path(id)
	if err != nil {
		return 0, err
	}
	if err := s.fs.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return 0, fmt.Errorf("failed to create blob dir: %w", err)
	}

	f, err := s.fs.OpenFile(p, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return 0, fmt.Errorf("failed to create blob: %w", err)
	}

	// Read one byte past the limit so an oversized body is detected.
	n, copyErr := io.Copy(f, io.LimitReader(r, limit+1))
	closeErr := f.Close()

	switch {
	case copyErr != nil:
		_ = s.fs.Remove(p)
		return 0, fmt.Errorf("failed to write blob: %w", copyErr)
	case n > limit:
		_ = s.fs.Remove(p)
		return 0, file.ErrTooLarge
	case closeErr != nil:
		_ = s.fs.Remove(p)
		return 0, fmt.Errorf("failed to close blob: %w", closeErr)
	}
	return n, nil
}

func (s *BlobStore) Open(ctx context.Context, id string) (io.ReadCloser, error) {
	p, err := s.path(id)
	if err != nil {
		return nil, err
	}
	f, err := s.fs.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewNotFoundError("file not found", id)
		}
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}
	return f, nil
}

// Delete is idempotent.
func (s *BlobStore) Delete(ctx context.Context, id string) error {
	p, err := s.path(id)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}
