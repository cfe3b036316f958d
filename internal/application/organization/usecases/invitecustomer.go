package usecases

import (
	"context"
	"fmt"
	"html"
	"time"

	notificationuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/application/organization/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/notification"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	orgvo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	uservo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/user/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type InviteCustomerCommand struct {
	Email     string
	StartDate *time.Time
	EndDate   *time.Time
	Principal *authorization.Principal
}

// InviteCustomerUseCase opens a pending contract from the caller's provider org
// to a customer identified by email. The customer may not be registered yet.
type InviteCustomerUseCase struct {
	orgRepo      organization.Repository
	contractRepo organization.ContractRepository
	userRepo     user.Repository
	mailer       InvitationMailer
	notifier     Notifier
	authorizer   Authorizer
	baseURL      string
	logger       logger.Interface
}

func NewInviteCustomerUseCase(
	orgRepo organization.Repository,
	contractRepo organization.ContractRepository,
	userRepo user.Repository,
	mailer InvitationMailer,
	notifier Notifier,
	authorizer Authorizer,
	baseURL string,
	logger logger.Interface,
) *InviteCustomerUseCase {
	return &InviteCustomerUseCase{
		orgRepo:      orgRepo,
		contractRepo: contractRepo,
		userRepo:     userRepo,
		mailer:       mailer,
		notifier:     notifier,
		authorizer:   authorizer,
		baseURL:      baseURL,
		logger:       logger,
	}
}

func (uc *InviteCustomerUseCase) Execute(ctx context.Context, cmd InviteCustomerCommand) (*dto.ContractDTO, error) {
	if err := uc.authorizer.Require(cmd.Principal, permission.ResourceContract, permission.ActionInvite); err != nil {
		return nil, err
	}
	email, err := uservo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	provider, err := uc.orgRepo.GetByID(ctx, cmd.Principal.OrgID)
	if err != nil {
		return nil, err
	}

	open, err := uc.contractRepo.CountOpenByProvider(ctx, provider.ID())
	if err != nil {
		uc.logger.Errorw("failed to count contracts", "org_id", provider.ID(), "error", err)
		return nil, fmt.Errorf("failed to count contracts: %w", err)
	}
	if !orgvo.Allows(provider.Quotas().MaxCustomers, open) {
		return nil, errors.NewConflictError("customer quota reached", fmt.Sprintf("max_customers=%d", provider.Quotas().MaxCustomers))
	}

	customer, err := uc.findCustomer(ctx, email.String())
	if err != nil {
		return nil, err
	}

	var customerID *uint
	if customer != nil {
		id := customer.ID()
		customerID = &id
		exists, err := uc.contractRepo.ExistsActive(ctx, provider.ID(), id)
		if err != nil {
			return nil, fmt.Errorf("failed to check contract: %w", err)
		}
		if exists {
			return nil, errors.NewConflictError("an active contract with this customer already exists")
		}
	}

	contract, err := organization.NewInvitation(provider.ID(), email.String(), customerID, cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.contractRepo.Create(ctx, contract); err != nil {
		uc.logger.Errorw("failed to create contract", "org_id", provider.ID(), "error", err)
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	uc.logger.Infow("customer invited",
		"contract_id", contract.ID(),
		"provider_id", provider.ID(),
		"invite_email", contract.InviteEmail(),
	)

	uc.sendInvitation(provider, contract)
	if customer != nil {
		uc.notifyCustomer(ctx, provider, customer, contract)
	}

	return dto.ToContractDTO(contract), nil
}

// findCustomer returns the registered end customer with this contact email, or
// nil when none is registered yet.
func (uc *InviteCustomerUseCase) findCustomer(ctx context.Context, email string) (*organization.Organization, error) {
	org, err := uc.orgRepo.GetByContactEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	if org.Type().IsServiceProvider() {
		return nil, errors.NewValidationError("invited organization is not an end customer")
	}
	return org, nil
}

func (uc *InviteCustomerUseCase) sendInvitation(provider *organization.Organization, contract *organization.ServiceContract) {
	if uc.mailer == nil {
		return
	}
	subject := fmt.Sprintf("%s invited you to RobotCare", provider.Name())
	plain := fmt.Sprintf("%s would like to service your robots. Sign in or register at %s to accept the invitation.", provider.Name(), uc.baseURL)
	body := "<p>" + html.EscapeString(plain) + "</p>"
	if err := uc.mailer.Send(contract.InviteEmail(), subject, body, plain); err != nil {
		uc.logger.Warnw("invitation email failed", "contract_id", contract.ID(), "error", err)
	}
}

func (uc *InviteCustomerUseCase) notifyCustomer(ctx context.Context, provider, customer *organization.Organization, contract *organization.ServiceContract) {
	admins, err := uc.userRepo.ListByOrgAndRoles(ctx, customer.ID(), []authorization.Role{authorization.RoleEndAdmin})
	if err != nil {
		uc.logger.Warnw("failed to load customer admins", "org_id", customer.ID(), "error", err)
		return
	}
	recipients := make([]notificationuc.Recipient, 0, len(admins))
	for _, u := range admins {
		recipients = append(recipients, notificationuc.Recipient{UserID: u.ID(), OrgID: u.OrgID(), Email: u.Email().String()})
	}

	err = uc.notifier.Notify(ctx, notificationuc.NotifyCommand{
		Recipients: recipients,
		Type:       notification.TypeContractInvited,
		Title:      fmt.Sprintf("Service invitation from %s", provider.Name()),
		Content:    fmt.Sprintf("Contract #%d is waiting for your acceptance.", contract.ID()),
	})
	if err != nil {
		uc.logger.Warnw("failed to notify invited customer", "contract_id", contract.ID(), "error", err)
	}
}
