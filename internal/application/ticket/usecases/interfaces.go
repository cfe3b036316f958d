package usecases

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/authz"
	notificationuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/application/ticket/dto"
	timelineuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/timeline/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
)

type Authorizer interface {
	Require(p *authorization.Principal, resource permission.Resource, action permission.Action) error
	ActiveLinks(ctx context.Context, p *authorization.Principal) (authz.ActiveLinks, error)
	AuthorizeTicket(ctx context.Context, p *authorization.Principal, t *ticket.Ticket, resource permission.Resource, action permission.Action) error
	AuthorizeRobot(ctx context.Context, p *authorization.Principal, r *robot.Robot, resource permission.Resource, action permission.Action) error
}

type EventRecorder interface {
	Record(ctx context.Context, cmd timelineuc.RecordEventCommand) (uint, error)
}

type Notifier interface {
	Notify(ctx context.Context, cmd notificationuc.NotifyCommand) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type UpsertStageExecutor interface {
	Execute(ctx context.Context, cmd UpsertStageCommand) (*dto.StageDTO, error)
}

type ListStagesExecutor interface {
	Execute(ctx context.Context, query ListStagesQuery) ([]dto.StageDTO, error)
}

type CompleteSummaryExecutor interface {
	Execute(ctx context.Context, cmd CompleteSummaryCommand) (*dto.StageDTO, error)
}

type ConfirmByCustomerExecutor interface {
	Execute(ctx context.Context, cmd ConfirmByCustomerCommand) (*dto.TicketDTO, error)
}

var (
	_ CreateTicketExecutor      = (*CreateTicketUseCase)(nil)
	_ GetTicketExecutor         = (*GetTicketUseCase)(nil)
	_ ListTicketsExecutor       = (*ListTicketsUseCase)(nil)
	_ UpdateTicketExecutor      = (*UpdateTicketUseCase)(nil)
	_ AssignTicketExecutor      = (*AssignTicketUseCase)(nil)
	_ DeleteTicketExecutor      = (*DeleteTicketUseCase)(nil)
	_ AddCommentExecutor        = (*AddCommentUseCase)(nil)
	_ UpsertStageExecutor       = (*UpsertStageUseCase)(nil)
	_ ListStagesExecutor        = (*ListStagesUseCase)(nil)
	_ CompleteSummaryExecutor   = (*CompleteSummaryUseCase)(nil)
	_ ConfirmByCustomerExecutor = (*ConfirmByCustomerUseCase)(nil)
)
