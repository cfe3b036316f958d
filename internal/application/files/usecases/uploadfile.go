package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/files/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/file"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type UploadFileCommand struct {
	Name        string
	ContentType string
	Body        io.Reader
	Principal   *authorization.Principal
}

// UploadFileUseCase stores a blob and its metadata. The returned id is what
// stage and library attachments reference.
type UploadFileUseCase struct {
	repo     file.Repository
	blobs    file.BlobStore
	maxBytes int64
	logger   logger.Interface
}

func NewUploadFileUseCase(repo file.Repository, blobs file.BlobStore, maxUploadMB int, logger logger.Interface) *UploadFileUseCase {
	return &UploadFileUseCase{
		repo:     repo,
		blobs:    blobs,
		maxBytes: int64(maxUploadMB) << 20,
		logger:   logger,
	}
}

func (uc *UploadFileUseCase) Execute(ctx context.Context, cmd UploadFileCommand) (*dto.FileDTO, error) {
	if cmd.Principal == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if cmd.Body == nil {
		return nil, errors.NewValidationError("file body is required")
	}

	f, err := file.NewFile(cmd.Name, cmd.ContentType, cmd.Principal.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	size, err := uc.blobs.Put(ctx, f.ID, cmd.Body, uc.maxBytes)
	if err != nil {
		if stderrors.Is(err, file.ErrTooLarge) {
			return nil, errors.NewValidationError(err.Error(), fmt.Sprintf("limit %d bytes", uc.maxBytes))
		}
		uc.logger.Errorw("failed to store file", "file_id", f.ID, "error", err)
		return nil, fmt.Errorf("failed to store file: %w", err)
	}
	f.Size = size

	if err := uc.repo.Create(ctx, f); err != nil {
		uc.logger.Errorw("failed to save file metadata", "file_id", f.ID, "error", err)
		if delErr := uc.blobs.Delete(ctx, f.ID); delErr != nil {
			uc.logger.Warnw("failed to remove orphaned blob", "file_id", f.ID, "error", delErr)
		}
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	uc.logger.Infow("file uploaded", "file_id", f.ID, "size", size, "user_id", cmd.Principal.UserID)
	return dto.ToFileDTO(f), nil
}
