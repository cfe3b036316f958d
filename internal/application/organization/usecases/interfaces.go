package usecases

import (
	"context"
	"time"

	notificationuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/application/organization/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
)

type Authorizer interface {
	Require(p *authorization.Principal, resource permission.Resource, action permission.Action) error
}

type Notifier interface {
	Notify(ctx context.Context, cmd notificationuc.NotifyCommand) error
}

// InvitationMailer sends the invitation email to an address that may not
// belong to any user yet.
type InvitationMailer interface {
	Send(to, subject, htmlBody, plainBody string) error
}

type GetOrganizationExecutor interface {
	Execute(ctx context.Context, query GetOrganizationQuery) (*dto.OrganizationDTO, error)
}

type UpdateOrganizationExecutor interface {
	Execute(ctx context.Context, cmd UpdateOrganizationCommand) (*dto.OrganizationDTO, error)
}

type InviteCustomerExecutor interface {
	Execute(ctx context.Context, cmd InviteCustomerCommand) (*dto.ContractDTO, error)
}

type AcceptContractExecutor interface {
	Execute(ctx context.Context, cmd AcceptContractCommand) (*dto.ContractDTO, error)
}

type TerminateContractExecutor interface {
	Execute(ctx context.Context, cmd TerminateContractCommand) (*dto.ContractDTO, error)
}

type ListContractsExecutor interface {
	Execute(ctx context.Context, query ListContractsQuery) ([]*dto.ContractDTO, error)
}

type ExpireContractsExecutor interface {
	Execute(ctx context.Context, now time.Time) (int, error)
}

var (
	_ GetOrganizationExecutor    = (*GetOrganizationUseCase)(nil)
	_ UpdateOrganizationExecutor = (*UpdateOrganizationUseCase)(nil)
	_ InviteCustomerExecutor     = (*InviteCustomerUseCase)(nil)
	_ AcceptContractExecutor     = (*AcceptContractUseCase)(nil)
	_ TerminateContractExecutor  = (*TerminateContractUseCase)(nil)
	_ ListContractsExecutor      = (*ListContractsUseCase)(nil)
	_ ExpireContractsExecutor    = (*ExpireContractsUseCase)(nil)
)
