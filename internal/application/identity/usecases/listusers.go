package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/identity/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/mapper"
)

type ListUsersQuery struct {
	Role      string
	Page      int
	PageSize  int
	Principal *authorization.Principal
}

type ListUsersResult struct {
	Users []*dto.UserDTO
	Total int64
}

type ListUsersUseCase struct {
	userRepo   user.Repository
	authorizer Authorizer
	logger     logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, authorizer Authorizer, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, authorizer: authorizer, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, q ListUsersQuery) (*ListUsersResult, error) {
	if err := uc.authorizer.Require(q.Principal, permission.ResourceUser, permission.ActionRead); err != nil {
		return nil, err
	}

	filter := user.ListFilter{OrgID: q.Principal.OrgID}
	filter.Page = q.Page
	filter.PageSize = q.PageSize
	if q.Role != "" {
		role, ok := authorization.ParseRole(q.Role)
		if !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid role: %s", q.Role))
		}
		filter.Role = &role
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "org_id", q.Principal.OrgID, "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &ListUsersResult{Users: mapper.MapSlice(users, dto.ToUserDTO), Total: total}, nil
}
