package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/library/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/library"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/mapper"
)

type GetDocumentQuery struct {
	DocumentID uint
	Principal  *authorization.Principal
}

type GetDocumentUseCase struct {
	repo       library.Repository
	authorizer Authorizer
	logger     logger.Interface
}

func NewGetDocumentUseCase(repo library.Repository, authorizer Authorizer, logger logger.Interface) *GetDocumentUseCase {
	return &GetDocumentUseCase{repo: repo, authorizer: authorizer, logger: logger}
}

func (uc *GetDocumentUseCase) Execute(ctx context.Context, q GetDocumentQuery) (*dto.DocumentDTO, error) {
	doc, err := uc.repo.GetByID(ctx, q.DocumentID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.AuthorizeLibraryDoc(ctx, q.Principal, doc, permission.ActionRead); err != nil {
		return nil, err
	}

	attachments, err := uc.repo.ListAttachments(ctx, doc.ID())
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "document_id", doc.ID(), "error", err)
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	result := dto.ToDocumentDTO(doc)
	result.Attachments = mapper.MapSlice(attachments, dto.ToAttachmentDTO)
	return &result, nil
}
