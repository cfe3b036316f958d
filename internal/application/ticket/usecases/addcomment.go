package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/ticket/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID  uint
	Content   string
	Principal *authorization.Principal
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	recorder    EventRecorder
	authorizer  Authorizer
	txManager   db.Transactor
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	recorder EventRecorder,
	authorizer Authorizer,
	txManager db.Transactor,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		recorder:    recorder,
		authorizer:  authorizer,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorizer.AuthorizeTicket(ctx, cmd.Principal, t, permission.ResourceTicket, permission.ActionUpdate); err != nil {
		return nil, err
	}

	comment, err := ticket.NewComment(t.ID(), cmd.Principal.UserID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.Create(txCtx, comment); err != nil {
			return err
		}
		return recordTicketEvent(txCtx, uc.recorder, t, timeline.EventCommentAdded,
			fmt.Sprintf("Comment on %s", t.Number()), comment.Content(), nil,
			uintPtr(comment.ID()), cmd.Principal.UserID)
	})
	if err != nil {
		uc.logger.Errorw("failed to add comment", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added successfully", "ticket_id", t.ID(), "comment_id", comment.ID())

	result := dto.ToCommentDTO(comment)
	return &result, nil
}
