package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/ticket/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/mapper"
)

type GetTicketQuery struct {
	TicketID  uint
	Principal *authorization.Principal
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	ratingRepo  ticket.RatingRepository
	authorizer  Authorizer
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	ratingRepo ticket.RatingRepository,
	authorizer Authorizer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		ratingRepo:  ratingRepo,
		authorizer:  authorizer,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, q GetTicketQuery) (*dto.TicketDetailDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, q.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.AuthorizeTicket(ctx, q.Principal, t, permission.ResourceTicket, permission.ActionRead); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket comments", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to load ticket comments: %w", err)
	}

	rating, err := uc.ratingRepo.GetByTicket(ctx, t.ID())
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to load ticket rating", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to load ticket rating: %w", err)
	}

	return &dto.TicketDetailDTO{
		TicketDTO: dto.ToTicketDTO(t),
		Comments:  mapper.MapSlice(comments, dto.ToCommentDTO),
		Rating:    dto.ToRatingDTO(rating),
	}, nil
}
