package usecases

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/organization/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type TerminateContractCommand struct {
	ContractID uint
	Principal  *authorization.Principal
}

type TerminateContractUseCase struct {
	contractRepo organization.ContractRepository
	authorizer   Authorizer
	logger       logger.Interface
}

func NewTerminateContractUseCase(contractRepo organization.ContractRepository, authorizer Authorizer, logger logger.Interface) *TerminateContractUseCase {
	return &TerminateContractUseCase{contractRepo: contractRepo, authorizer: authorizer, logger: logger}
}

func (uc *TerminateContractUseCase) Execute(ctx context.Context, cmd TerminateContractCommand) (*dto.ContractDTO, error) {
	if err := uc.authorizer.Require(cmd.Principal, permission.ResourceContract, permission.ActionUpdate); err != nil {
		return nil, err
	}
	if !cmd.Principal.IsAdmin() {
		return nil, errors.NewForbiddenError("only an organization admin can terminate a contract")
	}

	contract, err := uc.contractRepo.GetByID(ctx, cmd.ContractID)
	if err != nil {
		return nil, err
	}
	if !contract.Involves(cmd.Principal.OrgID) {
		return nil, errors.NewForbiddenError("your organization is not a party to this contract")
	}

	if err := contract.Terminate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.contractRepo.Update(ctx, contract); err != nil {
		uc.logger.Errorw("failed to terminate contract", "contract_id", contract.ID(), "error", err)
		return nil, fmt.Errorf("failed to terminate contract: %w", err)
	}

	uc.logger.Infow("contract terminated", "contract_id", contract.ID(), "by_org", cmd.Principal.OrgID)
	return dto.ToContractDTO(contract), nil
}
