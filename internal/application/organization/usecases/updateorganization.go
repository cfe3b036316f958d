package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/organization/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	orgvo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	uservo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/user/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type UpdateOrganizationCommand struct {
	Name         *string
	ContactEmail *string
	Quotas       *orgvo.Quotas
	Principal    *authorization.Principal
}

type UpdateOrganizationUseCase struct {
	orgRepo    organization.Repository
	authorizer Authorizer
	logger     logger.Interface
}

func NewUpdateOrganizationUseCase(orgRepo organization.Repository, authorizer Authorizer, logger logger.Interface) *UpdateOrganizationUseCase {
	return &UpdateOrganizationUseCase{orgRepo: orgRepo, authorizer: authorizer, logger: logger}
}

func (uc *UpdateOrganizationUseCase) Execute(ctx context.Context, cmd UpdateOrganizationCommand) (*dto.OrganizationDTO, error) {
	if err := uc.authorizer.Require(cmd.Principal, permission.ResourceOrganization, permission.ActionUpdate); err != nil {
		return nil, err
	}
	if cmd.Name == nil && cmd.ContactEmail == nil && cmd.Quotas == nil {
		return nil, errors.NewValidationError("no fields to update")
	}

	org, err := uc.orgRepo.GetByID(ctx, cmd.Principal.OrgID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if err := org.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.ContactEmail != nil {
		email, err := uservo.NewEmail(*cmd.ContactEmail)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		org.ChangeContactEmail(email.String())
	}
	if cmd.Quotas != nil {
		if err := org.SetQuotas(*cmd.Quotas); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.orgRepo.Update(ctx, org); err != nil {
		uc.logger.Errorw("failed to update organization", "org_id", org.ID(), "error", err)
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	uc.logger.Infow("organization updated", "org_id", org.ID(), "user_id", cmd.Principal.UserID)
	return dto.ToOrganizationDTO(org), nil
}
