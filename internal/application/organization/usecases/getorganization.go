package usecases

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/organization/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type GetOrganizationQuery struct {
	Principal *authorization.Principal
}

// GetOrganizationUseCase returns the caller's own organization.
type GetOrganizationUseCase struct {
	orgRepo    organization.Repository
	authorizer Authorizer
	logger     logger.Interface
}

func NewGetOrganizationUseCase(orgRepo organization.Repository, authorizer Authorizer, logger logger.Interface) *GetOrganizationUseCase {
	return &GetOrganizationUseCase{orgRepo: orgRepo, authorizer: authorizer, logger: logger}
}

func (uc *GetOrganizationUseCase) Execute(ctx context.Context, q GetOrganizationQuery) (*dto.OrganizationDTO, error) {
	if err := uc.authorizer.Require(q.Principal, permission.ResourceOrganization, permission.ActionRead); err != nil {
		return nil, err
	}

	org, err := uc.orgRepo.GetByID(ctx, q.Principal.OrgID)
	if err != nil {
		return nil, err
	}
	return dto.ToOrganizationDTO(org), nil
}
