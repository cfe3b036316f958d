package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/library/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/file"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/library"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type AddAttachmentCommand struct {
	DocumentID uint
	FileID     string
	Principal  *authorization.Principal
}

// AddAttachmentUseCase links a previously uploaded file to a document.
type AddAttachmentUseCase struct {
	repo       library.Repository
	files      file.Repository
	authorizer Authorizer
	logger     logger.Interface
}

func NewAddAttachmentUseCase(repo library.Repository, files file.Repository, authorizer Authorizer, logger logger.Interface) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{repo: repo, files: files, authorizer: authorizer, logger: logger}
}

func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error) {
	if !file.IsValidID(cmd.FileID) {
		return nil, errors.NewValidationError("invalid file id")
	}

	doc, err := uc.repo.GetByID(ctx, cmd.DocumentID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.AuthorizeLibraryDoc(ctx, cmd.Principal, doc, permission.ActionUpdate); err != nil {
		return nil, err
	}

	f, err := uc.files.GetByID(ctx, cmd.FileID)
	if err != nil {
		return nil, err
	}

	att := &library.Attachment{
		DocumentID:  doc.ID(),
		FileID:      f.ID,
		FileName:    f.Name,
		ContentType: f.ContentType,
		Size:        f.Size,
		CreatedAt:   biztime.NowUTC(),
	}
	if err := uc.repo.AddAttachment(ctx, att); err != nil {
		uc.logger.Errorw("failed to add attachment", "document_id", doc.ID(), "file_id", f.ID, "error", err)
		return nil, fmt.Errorf("failed to add attachment: %w", err)
	}

	uc.logger.Infow("attachment added", "document_id", doc.ID(), "file_id", f.ID)

	result := dto.ToAttachmentDTO(att)
	return &result, nil
}
