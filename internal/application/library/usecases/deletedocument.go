package usecases

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/library"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type DeleteDocumentCommand struct {
	DocumentID uint
	Principal  *authorization.Principal
}

type DeleteDocumentUseCase struct {
	repo       library.Repository
	authorizer Authorizer
	logger     logger.Interface
}

func NewDeleteDocumentUseCase(repo library.Repository, authorizer Authorizer, logger logger.Interface) *DeleteDocumentUseCase {
	return &DeleteDocumentUseCase{repo: repo, authorizer: authorizer, logger: logger}
}

func (uc *DeleteDocumentUseCase) Execute(ctx context.Context, cmd DeleteDocumentCommand) error {
	doc, err := uc.repo.GetByID(ctx, cmd.DocumentID)
	if err != nil {
		return err
	}

	if err := uc.authorizer.AuthorizeLibraryDoc(ctx, cmd.Principal, doc, permission.ActionDelete); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, doc.ID()); err != nil {
		uc.logger.Errorw("failed to delete library document", "document_id", doc.ID(), "error", err)
		return err
	}

	uc.logger.Infow("library document deleted", "document_id", doc.ID(), "user_id", cmd.Principal.UserID)
	return nil
}
