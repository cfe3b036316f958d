package library

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

type Repository interface {
	Create(ctx context.Context, doc *Document) error
	Update(ctx context.Context, doc *Document) error
	GetByID(ctx context.Context, id uint) (*Document, error)
	// Delete removes the document and its attachment rows.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Document, int64, error)

	AddAttachment(ctx context.Context, att *Attachment) error
	ListAttachments(ctx context.Context, documentID uint) ([]*Attachment, error)
}

// ListFilter restricts documents to OrgIDs, the publishing providers the
// caller may read.
type ListFilter struct {
	query.BaseFilter
	OrgIDs    []uint
	Keyword   string
	Category  string
	FaultCode string
}
