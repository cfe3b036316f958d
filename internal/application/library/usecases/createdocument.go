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

type CreateDocumentCommand struct {
	Title      string
	Content    string
	Category   string
	FaultCode  string
	RobotModel string
	Tags       []string
	Principal  *authorization.Principal
}

// CreateDocumentUseCase publishes a document in the caller's provider library.
type CreateDocumentUseCase struct {
	repo       library.Repository
	renderer   Renderer
	authorizer Authorizer
	logger     logger.Interface
}

func NewCreateDocumentUseCase(repo library.Repository, renderer Renderer, authorizer Authorizer, logger logger.Interface) *CreateDocumentUseCase {
	return &CreateDocumentUseCase{repo: repo, renderer: renderer, authorizer: authorizer, logger: logger}
}

func (uc *CreateDocumentUseCase) Execute(ctx context.Context, cmd CreateDocumentCommand) (*dto.DocumentDTO, error) {
	if err := uc.authorizer.Require(cmd.Principal, permission.ResourceLibrary, permission.ActionCreate); err != nil {
		return nil, err
	}
	if !cmd.Principal.IsServiceSide() {
		return nil, errors.NewForbiddenError("only service providers publish library documents")
	}

	doc, err := library.NewDocument(cmd.Principal.OrgID, cmd.Title, cmd.Content, cmd.Category, cmd.FaultCode, cmd.RobotModel, cmd.Tags, cmd.Principal.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := render(uc.renderer, doc); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, doc); err != nil {
		uc.logger.Errorw("failed to create library document", "org_id", cmd.Principal.OrgID, "error", err)
		return nil, fmt.Errorf("failed to create library document: %w", err)
	}

	uc.logger.Infow("library document created", "document_id", doc.ID(), "org_id", doc.OrgID())

	result := dto.ToDocumentDTO(doc)
	return &result, nil
}

func render(renderer Renderer, doc *library.Document) error {
	html, err := renderer.Render(doc.Content())
	if err != nil {
		return errors.NewValidationError("content could not be rendered", err.Error())
	}
	doc.SetRenderedContent(html)
	return nil
}
