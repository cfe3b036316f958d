package usecases

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/robot/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type GetRobotQuery struct {
	RobotID   uint
	Principal *authorization.Principal
}

type GetRobotUseCase struct {
	robotRepo  robot.Repository
	authorizer Authorizer
	logger     logger.Interface
}

func NewGetRobotUseCase(robotRepo robot.Repository, authorizer Authorizer, logger logger.Interface) *GetRobotUseCase {
	return &GetRobotUseCase{robotRepo: robotRepo, authorizer: authorizer, logger: logger}
}

func (uc *GetRobotUseCase) Execute(ctx context.Context, q GetRobotQuery) (*dto.RobotDTO, error) {
	r, err := uc.robotRepo.GetByID(ctx, q.RobotID)
	if err != nil {
		return nil, err
	}
	if err := uc.authorizer.AuthorizeRobot(ctx, q.Principal, r, permission.ResourceRobot, permission.ActionRead); err != nil {
		return nil, err
	}
	result := dto.ToRobotDTO(r)
	return &result, nil
}
