package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/identity/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	orgvo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	uservo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/user/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type CreateUserCommand struct {
	Email    string
	Name     string
	Password string
	// Role defaults to the engineer role of the caller's side.
	Role      string
	Principal *authorization.Principal
}

// CreateUserUseCase lets an org admin add members to their own organization.
type CreateUserUseCase struct {
	userRepo   user.Repository
	orgRepo    organization.Repository
	hasher     PasswordHasher
	authorizer Authorizer
	logger     logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, orgRepo organization.Repository, hasher PasswordHasher, authorizer Authorizer, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{userRepo: userRepo, orgRepo: orgRepo, hasher: hasher, authorizer: authorizer, logger: logger}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	p := cmd.Principal
	if err := uc.authorizer.Require(p, permission.ResourceUser, permission.ActionCreate); err != nil {
		return nil, err
	}

	org, err := uc.orgRepo.GetByID(ctx, p.OrgID)
	if err != nil {
		return nil, err
	}

	role := authorization.EngineerRoleFor(org.Type().String())
	if cmd.Role != "" {
		parsed, ok := authorization.ParseRole(cmd.Role)
		if !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid role: %s", cmd.Role))
		}
		if parsed.IsServiceSide() != org.Type().IsServiceProvider() {
			return nil, errors.NewValidationError(fmt.Sprintf("role %s does not belong to a %s organization", parsed, org.Type()))
		}
		role = parsed
	}

	email, err := uservo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uservo.ValidatePassword(cmd.Password); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if role.IsEngineer() {
		count, err := uc.userRepo.CountByOrgAndRoles(ctx, org.ID(), []authorization.Role{role})
		if err != nil {
			return nil, fmt.Errorf("failed to count engineers: %w", err)
		}
		if !orgvo.Allows(org.Quotas().MaxEngineers, count) {
			return nil, errors.NewConflictError("engineer quota reached", fmt.Sprintf("max_engineers=%d", org.Quotas().MaxEngineers))
		}
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := user.NewUser(org.ID(), email, cmd.Name, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to create user", "org_id", org.ID(), "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "org_id", org.ID(), "role", role, "by", p.UserID)
	return dto.ToUserDTO(u), nil
}
