package usecases

import (
	"context"
	"fmt"
	"io"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/files/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/file"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type OpenFileQuery struct {
	FileID    string
	Principal *authorization.Principal
}

// OpenFileResult carries an open blob. Callers must close Content.
type OpenFileResult struct {
	File    *dto.FileDTO
	Content io.ReadCloser
}

type OpenFileUseCase struct {
	repo   file.Repository
	blobs  file.BlobStore
	logger logger.Interface
}

func NewOpenFileUseCase(repo file.Repository, blobs file.BlobStore, logger logger.Interface) *OpenFileUseCase {
	return &OpenFileUseCase{repo: repo, blobs: blobs, logger: logger}
}

func (uc *OpenFileUseCase) Execute(ctx context.Context, q OpenFileQuery) (*OpenFileResult, error) {
	if q.Principal == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !file.IsValidID(q.FileID) {
		return nil, errors.NewNotFoundError("file not found")
	}

	f, err := uc.repo.GetByID(ctx, q.FileID)
	if err != nil {
		return nil, err
	}

	content, err := uc.blobs.Open(ctx, f.ID)
	if err != nil {
		uc.logger.Errorw("failed to open stored file", "file_id", f.ID, "error", err)
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return &OpenFileResult{File: dto.ToFileDTO(f), Content: content}, nil
}
