package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/robot/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/mapper"
)

type ListRobotsQuery struct {
	Principal *authorization.Principal
	Status    *string
	Keyword   string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListRobotsResult struct {
	Robots []dto.RobotDTO
	Total  int64
}

// ListRobotsUseCase scopes end-side callers to robots they own and service-side
// callers to robots they service.
type ListRobotsUseCase struct {
	robotRepo  robot.Repository
	authorizer Authorizer
	logger     logger.Interface
}

func NewListRobotsUseCase(robotRepo robot.Repository, authorizer Authorizer, logger logger.Interface) *ListRobotsUseCase {
	return &ListRobotsUseCase{robotRepo: robotRepo, authorizer: authorizer, logger: logger}
}

func (uc *ListRobotsUseCase) Execute(ctx context.Context, q ListRobotsQuery) (*ListRobotsResult, error) {
	if err := uc.authorizer.Require(q.Principal, permission.ResourceRobot, permission.ActionRead); err != nil {
		return nil, err
	}

	filter := robot.ListFilter{Keyword: strings.TrimSpace(q.Keyword)}
	filter.Page = q.Page
	filter.PageSize = q.PageSize
	filter.SortBy = q.SortBy
	filter.SortOrder = q.SortOrder

	orgID := q.Principal.OrgID
	if q.Principal.IsEndSide() {
		filter.OrgID = &orgID
	} else {
		filter.ServiceProviderID = &orgID
	}

	if q.Status != nil {
		status, err := robot.NewStatus(*q.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	robots, total, err := uc.robotRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list robots", "org_id", orgID, "error", err)
		return nil, fmt.Errorf("failed to list robots: %w", err)
	}

	return &ListRobotsResult{
		Robots: mapper.MapSlice(robots, dto.ToRobotDTO),
		Total:  total,
	}, nil
}
