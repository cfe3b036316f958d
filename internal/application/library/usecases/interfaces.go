package usecases

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/authz"
	"github.com/automationyuli-li/RobotCare-sub001/internal/application/library/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/library"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
)

type Authorizer interface {
	Require(p *authorization.Principal, resource permission.Resource, action permission.Action) error
	ActiveLinks(ctx context.Context, p *authorization.Principal) (authz.ActiveLinks, error)
	AuthorizeLibraryDoc(ctx context.Context, p *authorization.Principal, d *library.Document, action permission.Action) error
}

// Renderer turns markdown into sanitized HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}

type CreateDocumentExecutor interface {
	Execute(ctx context.Context, cmd CreateDocumentCommand) (*dto.DocumentDTO, error)
}

type GetDocumentExecutor interface {
	Execute(ctx context.Context, query GetDocumentQuery) (*dto.DocumentDTO, error)
}

type ListDocumentsExecutor interface {
	Execute(ctx context.Context, query ListDocumentsQuery) (*ListDocumentsResult, error)
}

type UpdateDocumentExecutor interface {
	Execute(ctx context.Context, cmd UpdateDocumentCommand) (*dto.DocumentDTO, error)
}

type DeleteDocumentExecutor interface {
	Execute(ctx context.Context, cmd DeleteDocumentCommand) error
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error)
}

var (
	_ CreateDocumentExecutor = (*CreateDocumentUseCase)(nil)
	_ GetDocumentExecutor    = (*GetDocumentUseCase)(nil)
	_ ListDocumentsExecutor  = (*ListDocumentsUseCase)(nil)
	_ UpdateDocumentExecutor = (*UpdateDocumentUseCase)(nil)
	_ DeleteDocumentExecutor = (*DeleteDocumentUseCase)(nil)
	_ AddAttachmentExecutor  = (*AddAttachmentUseCase)(nil)
)
