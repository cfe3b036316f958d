package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/organization/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	orgvo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/mapper"
)

type ListContractsQuery struct {
	Status    string
	Principal *authorization.Principal
}

type ListContractsUseCase struct {
	contractRepo organization.ContractRepository
	authorizer   Authorizer
	logger       logger.Interface
}

func NewListContractsUseCase(contractRepo organization.ContractRepository, authorizer Authorizer, logger logger.Interface) *ListContractsUseCase {
	return &ListContractsUseCase{contractRepo: contractRepo, authorizer: authorizer, logger: logger}
}

func (uc *ListContractsUseCase) Execute(ctx context.Context, q ListContractsQuery) ([]*dto.ContractDTO, error) {
	if err := uc.authorizer.Require(q.Principal, permission.ResourceContract, permission.ActionRead); err != nil {
		return nil, err
	}

	var status *orgvo.ContractStatus
	if q.Status != "" {
		s := orgvo.ContractStatus(q.Status)
		if !s.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid contract status: %s", q.Status))
		}
		status = &s
	}

	contracts, err := uc.contractRepo.ListByOrg(ctx, q.Principal.OrgID, status)
	if err != nil {
		uc.logger.Errorw("failed to list contracts", "org_id", q.Principal.OrgID, "error", err)
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return mapper.MapSlice(contracts, dto.ToContractDTO), nil
}
