package usecases

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/identity/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, p *authorization.Principal) (*dto.UserDTO, error) {
	if p == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	u, err := uc.userRepo.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	return dto.ToUserDTO(u), nil
}
