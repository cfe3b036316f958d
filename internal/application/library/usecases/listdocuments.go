package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/library/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/library"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/mapper"
)

type ListDocumentsQuery struct {
	Principal *authorization.Principal
	Keyword   string
	Category  string
	FaultCode string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListDocumentsResult struct {
	Documents []dto.DocumentListItemDTO
	Total     int64
}

// ListDocumentsUseCase searches the libraries visible to the caller: its own
// for a provider, its contracted providers' for a customer.
type ListDocumentsUseCase struct {
	repo       library.Repository
	authorizer Authorizer
	logger     logger.Interface
}

func NewListDocumentsUseCase(repo library.Repository, authorizer Authorizer, logger logger.Interface) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{repo: repo, authorizer: authorizer, logger: logger}
}

func (uc *ListDocumentsUseCase) Execute(ctx context.Context, q ListDocumentsQuery) (*ListDocumentsResult, error) {
	if err := uc.authorizer.Require(q.Principal, permission.ResourceLibrary, permission.ActionRead); err != nil {
		return nil, err
	}

	orgIDs := []uint{q.Principal.OrgID}
	if q.Principal.IsEndSide() {
		links, err := uc.authorizer.ActiveLinks(ctx, q.Principal)
		if err != nil {
			return nil, err
		}
		orgIDs = links.IDs()
	}
	if len(orgIDs) == 0 {
		return &ListDocumentsResult{Documents: []dto.DocumentListItemDTO{}}, nil
	}

	filter := library.ListFilter{
		OrgIDs:    orgIDs,
		Keyword:   strings.TrimSpace(q.Keyword),
		Category:  q.Category,
		FaultCode: strings.TrimSpace(q.FaultCode),
	}
	filter.Page = q.Page
	filter.PageSize = q.PageSize
	filter.SortBy = q.SortBy
	filter.SortOrder = q.SortOrder

	docs, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list library documents", "error", err)
		return nil, fmt.Errorf("failed to list library documents: %w", err)
	}

	return &ListDocumentsResult{
		Documents: mapper.MapSlice(docs, dto.ToDocumentListItemDTO),
		Total:     total,
	}, nil
}
