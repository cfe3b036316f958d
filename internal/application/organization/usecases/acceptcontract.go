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

type AcceptContractCommand struct {
	ContractID uint
	Principal  *authorization.Principal
}

// AcceptContractUseCase activates a pending contract on behalf of the invited
// customer's admin.
type AcceptContractUseCase struct {
	orgRepo      organization.Repository
	contractRepo organization.ContractRepository
	authorizer   Authorizer
	logger       logger.Interface
}

func NewAcceptContractUseCase(orgRepo organization.Repository, contractRepo organization.ContractRepository, authorizer Authorizer, logger logger.Interface) *AcceptContractUseCase {
	return &AcceptContractUseCase{orgRepo: orgRepo, contractRepo: contractRepo, authorizer: authorizer, logger: logger}
}

func (uc *AcceptContractUseCase) Execute(ctx context.Context, cmd AcceptContractCommand) (*dto.ContractDTO, error) {
	if err := uc.authorizer.Require(cmd.Principal, permission.ResourceContract, permission.ActionUpdate); err != nil {
		return nil, err
	}
	if cmd.Principal.Role != authorization.RoleEndAdmin {
		return nil, errors.NewForbiddenError("only a customer admin can accept a contract")
	}

	contract, err := uc.contractRepo.GetByID(ctx, cmd.ContractID)
	if err != nil {
		return nil, err
	}

	invited, err := uc.isInvitee(ctx, cmd.Principal, contract)
	if err != nil {
		return nil, err
	}
	if !invited {
		return nil, errors.NewForbiddenError("this contract was not offered to your organization")
	}

	if err := contract.Accept(cmd.Principal.OrgID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.contractRepo.Update(ctx, contract); err != nil {
		uc.logger.Errorw("failed to accept contract", "contract_id", contract.ID(), "error", err)
		return nil, fmt.Errorf("failed to accept contract: %w", err)
	}

	uc.logger.Infow("contract accepted",
		"contract_id", contract.ID(),
		"provider_id", contract.ServiceProviderID(),
		"customer_id", cmd.Principal.OrgID,
	)
	return dto.ToContractDTO(contract), nil
}

// isInvitee matches a bound contract by customer id and an unbound one by the
// invite email against the caller's or the organization's contact address.
func (uc *AcceptContractUseCase) isInvitee(ctx context.Context, p *authorization.Principal, c *organization.ServiceContract) (bool, error) {
	if id := c.EndCustomerID(); id != nil {
		return *id == p.OrgID, nil
	}
	if c.InviteEmail() == p.Email {
		return true, nil
	}
	org, err := uc.orgRepo.GetByID(ctx, p.OrgID)
	if err != nil {
		return false, err
	}
	return org.ContactEmail() == c.InviteEmail(), nil
}
