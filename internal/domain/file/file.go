// Package file describes uploaded blobs referenced by stage and library attachments.
package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
)

const maxNameLength = 255

// File is the metadata of a stored upload. ID is a uuid and doubles as the blob key.
type File struct {
	ID          string
	Name        string
	ContentType string
	Size        int64
	UploadedBy  uint
	CreatedAt   time.Time
}

func NewFile(name, contentType string, uploadedBy uint) (*File, error) {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return nil, fmt.Errorf("file name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("file name cannot exceed %d characters", maxNameLength)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &File{
		ID:          uuid.NewString(),
		Name:        name,
		ContentType: contentType,
		UploadedBy:  uploadedBy,
		CreatedAt:   biztime.NowUTC(),
	}, nil
}

// IsValidID reports whether id has the shape of a file id.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type Repository interface {
	Create(ctx context.Context, f *File) error
	GetByID(ctx context.Context, id string) (*File, error)
}

// BlobStore holds file contents keyed by file id.
type BlobStore interface {
	// Put writes at most limit bytes and returns the number written. Larger
	// bodies fail with ErrTooLarge and leave nothing behind.
	Put(ctx context.Context, id string, r io.Reader, limit int64) (int64, error)
	Open(ctx context.Context, id string) (io.ReadCloser, error)
	Delete(ctx context.Context, id string) error
}

var ErrTooLarge = fmt.Errorf("file exceeds the upload limit")
