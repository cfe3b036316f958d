package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/identity/dto"
	orgdto "github.com/automationyuli-li/RobotCare-sub001/internal/application/organization/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	orgvo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	uservo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/user/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type RegisterCommand struct {
	OrgName  string
	OrgType  string
	Email    string
	Name     string
	Password string
}

// RegisterUseCase creates an organization together with its first admin. For
// an end customer, pending invitations addressed to the admin email are bound
// to the new organization.
type RegisterUseCase struct {
	orgRepo      organization.Repository
	contractRepo organization.ContractRepository
	userRepo     user.Repository
	hasher       PasswordHasher
	txManager    db.Transactor
	logger       logger.Interface
}

func NewRegisterUseCase(
	orgRepo organization.Repository,
	contractRepo organization.ContractRepository,
	userRepo user.Repository,
	hasher PasswordHasher,
	txManager db.Transactor,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		orgRepo:      orgRepo,
		contractRepo: contractRepo,
		userRepo:     userRepo,
		hasher:       hasher,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	orgType, err := orgvo.NewOrgType(cmd.OrgType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	email, err := uservo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uservo.ValidatePassword(cmd.Password); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	org, err := organization.NewOrganization(cmd.OrgName, orgType, email.String())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var admin *user.User
	reconciled := 0
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.orgRepo.Create(txCtx, org); err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		admin, err = user.NewUser(org.ID(), email, cmd.Name, hash, authorization.AdminRoleFor(orgType.String()))
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Create(txCtx, admin); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("email is already registered")
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		if orgType.IsServiceProvider() {
			return nil
		}
		reconciled, err = uc.reconcile(txCtx, org.ID(), email.String())
		return err
	})
	if err != nil {
		uc.logger.Errorw("registration failed", "email", email.String(), "error", err)
		return nil, err
	}

	uc.logger.Infow("organization registered",
		"org_id", org.ID(),
		"org_type", orgType,
		"user_id", admin.ID(),
		"reconciled_contracts", reconciled,
	)

	return &RegisterResult{
		User:                dto.ToUserDTO(admin),
		Organization:        orgdto.ToOrganizationDTO(org),
		ReconciledContracts: reconciled,
	}, nil
}

func (uc *RegisterUseCase) reconcile(ctx context.Context, orgID uint, email string) (int, error) {
	pending, err := uc.contractRepo.ListPendingByInviteEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("failed to load invitations: %w", err)
	}

	bound := 0
	for _, c := range pending {
		if c.EndCustomerID() != nil {
			continue
		}
		if err := c.BindCustomer(orgID); err != nil {
			return bound, errors.NewValidationError(err.Error())
		}
		if err := uc.contractRepo.Update(ctx, c); err != nil {
			return bound, fmt.Errorf("failed to bind invitation %d: %w", c.ID(), err)
		}
		bound++
	}
	return bound, nil
}
