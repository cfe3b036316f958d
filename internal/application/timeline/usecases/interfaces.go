package usecases

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
)

// Authorizer is the slice of authz.Authorizer this context needs.
type Authorizer interface {
	AuthorizeTicket(ctx context.Context, p *authorization.Principal, t *ticket.Ticket, resource permission.Resource, action permission.Action) error
	AuthorizeRobot(ctx context.Context, p *authorization.Principal, r *robot.Robot, resource permission.Resource, action permission.Action) error
}

// EventRecorder appends timeline events for other contexts.
type EventRecorder interface {
	Record(ctx context.Context, cmd RecordEventCommand) (uint, error)
}

type ListEventsExecutor interface {
	Execute(ctx context.Context, query ListEventsQuery) (*ListEventsResult, error)
}

type DeleteEventExecutor interface {
	Execute(ctx context.Context, cmd DeleteEventCommand) error
}

var (
	_ EventRecorder       = (*RecordEventUseCase)(nil)
	_ ListEventsExecutor  = (*ListEventsUseCase)(nil)
	_ DeleteEventExecutor = (*DeleteEventUseCase)(nil)
)
