package usecases

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type DeleteRobotCommand struct {
	RobotID   uint
	Principal *authorization.Principal
}

// DeleteRobotUseCase retires a robot. Robots are never removed so their tickets
// and timeline stay readable.
type DeleteRobotUseCase struct {
	robotRepo  robot.Repository
	authorizer Authorizer
	logger     logger.Interface
}

func NewDeleteRobotUseCase(robotRepo robot.Repository, authorizer Authorizer, logger logger.Interface) *DeleteRobotUseCase {
	return &DeleteRobotUseCase{robotRepo: robotRepo, authorizer: authorizer, logger: logger}
}

func (uc *DeleteRobotUseCase) Execute(ctx context.Context, cmd DeleteRobotCommand) error {
	r, err := uc.robotRepo.GetByID(ctx, cmd.RobotID)
	if err != nil {
		return err
	}

	if err := uc.authorizer.AuthorizeRobot(ctx, cmd.Principal, r, permission.ResourceRobot, permission.ActionDelete); err != nil {
		return err
	}

	r.SoftDelete()
	if err := uc.robotRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to delete robot", "robot_id", r.ID(), "error", err)
		return err
	}

	uc.logger.Infow("robot deleted", "robot_id", r.ID(), "user_id", cmd.Principal.UserID)
	return nil
}
