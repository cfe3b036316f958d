package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/library/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/library"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type UpdateDocumentCommand struct {
	DocumentID uint
	Title      *string
	Content    *string
	Category   *string
	FaultCode  *string
	RobotModel *string
	Tags       []string
	Principal  *authorization.Principal
}

type UpdateDocumentUseCase struct {
	repo       library.Repository
	renderer   Renderer
	authorizer Authorizer
	logger     logger.Interface
}

func NewUpdateDocumentUseCase(repo library.Repository, renderer Renderer, authorizer Authorizer, logger logger.Interface) *UpdateDocumentUseCase {
	return &UpdateDocumentUseCase{repo: repo, renderer: renderer, authorizer: authorizer, logger: logger}
}

func (uc *UpdateDocumentUseCase) Execute(ctx context.Context, cmd UpdateDocumentCommand) (*dto.DocumentDTO, error) {
	doc, err := uc.repo.GetByID(ctx, cmd.DocumentID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.AuthorizeLibraryDoc(ctx, cmd.Principal, doc, permission.ActionUpdate); err != nil {
		return nil, err
	}

	if err := doc.Update(cmd.Title, cmd.Content, cmd.Category, cmd.FaultCode, cmd.RobotModel, cmd.Tags); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Content != nil {
		if err := render(uc.renderer, doc); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Update(ctx, doc); err != nil {
		uc.logger.Errorw("failed to update library document", "document_id", doc.ID(), "error", err)
		return nil, fmt.Errorf("failed to update library document: %w", err)
	}

	uc.logger.Infow("library document updated", "document_id", doc.ID(), "user_id", cmd.Principal.UserID)

	result := dto.ToDocumentDTO(doc)
	return &result, nil
}
