package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/ticket/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/mapper"
)

type ListTicketsQuery struct {
	Principal *authorization.Principal
	Status    *string
	Priority  *string
	RobotID   *uint
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
	Total   int64
}

// ListTicketsUseCase lists the tickets the caller's organization can see. A
// service admin sees only customers it holds an active contract with.
type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	authorizer Authorizer
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	authorizer Authorizer,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, q ListTicketsQuery) (*ListTicketsResult, error) {
	if err := uc.authorizer.Require(q.Principal, permission.ResourceTicket, permission.ActionRead); err != nil {
		return nil, err
	}
	p := q.Principal

	filter := ticket.TicketFilter{RobotID: q.RobotID}
	filter.Page = q.Page
	filter.PageSize = q.PageSize
	filter.SortBy = q.SortBy
	filter.SortOrder = q.SortOrder

	if q.Status != nil {
		status, err := vo.NewTicketStatus(*q.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if q.Priority != nil {
		priority, err := vo.NewPriority(*q.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	switch {
	case p.Role == authorization.RoleServiceAdmin:
		links, err := uc.authorizer.ActiveLinks(ctx, p)
		if err != nil {
			return nil, err
		}
		if len(links.IDs()) == 0 {
			return &ListTicketsResult{Tickets: []dto.TicketDTO{}}, nil
		}
		filter.ServiceProviderID = &p.OrgID
		filter.CustomerIDs = links.IDs()
	case p.Role == authorization.RoleEndAdmin:
		filter.CustomerID = &p.OrgID
	default:
		filter.CustomerID = &p.OrgID
		filter.ServiceProviderID = &p.OrgID
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "org_id", p.OrgID, "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return &ListTicketsResult{
		Tickets: mapper.MapSlice(tickets, dto.ToTicketDTO),
		Total:   total,
	}, nil
}
