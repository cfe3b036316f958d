package usecases

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/robot/dto"
	timelineuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/timeline/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
)

type Authorizer interface {
	Require(p *authorization.Principal, resource permission.Resource, action permission.Action) error
	AuthorizeRobot(ctx context.Context, p *authorization.Principal, r *robot.Robot, resource permission.Resource, action permission.Action) error
}

type EventRecorder interface {
	Record(ctx context.Context, cmd timelineuc.RecordEventCommand) (uint, error)
}

type CreateRobotExecutor interface {
	Execute(ctx context.Context, cmd CreateRobotCommand) (*dto.RobotDTO, error)
}

type GetRobotExecutor interface {
	Execute(ctx context.Context, query GetRobotQuery) (*dto.RobotDTO, error)
}

type ListRobotsExecutor interface {
	Execute(ctx context.Context, query ListRobotsQuery) (*ListRobotsResult, error)
}

type UpdateRobotExecutor interface {
	Execute(ctx context.Context, cmd UpdateRobotCommand) (*dto.RobotDTO, error)
}

type DeleteRobotExecutor interface {
	Execute(ctx context.Context, cmd DeleteRobotCommand) error
}

type AddMaintenanceLogExecutor interface {
	Execute(ctx context.Context, cmd AddMaintenanceLogCommand) (*dto.MaintenanceLogDTO, error)
}

type ListMaintenanceLogsExecutor interface {
	Execute(ctx context.Context, query ListMaintenanceLogsQuery) (*ListMaintenanceLogsResult, error)
}

var (
	_ CreateRobotExecutor         = (*CreateRobotUseCase)(nil)
	_ GetRobotExecutor            = (*GetRobotUseCase)(nil)
	_ ListRobotsExecutor          = (*ListRobotsUseCase)(nil)
	_ UpdateRobotExecutor         = (*UpdateRobotUseCase)(nil)
	_ DeleteRobotExecutor         = (*DeleteRobotUseCase)(nil)
	_ AddMaintenanceLogExecutor   = (*AddMaintenanceLogUseCase)(nil)
	_ ListMaintenanceLogsExecutor = (*ListMaintenanceLogsUseCase)(nil)
)
