package organization

import (
	"context"
	"time"

	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, org *Organization) error
	Update(ctx context.Context, org *Organization) error
	GetByID(ctx context.Context, id uint) (*Organization, error)
	GetByContactEmail(ctx context.Context, email string) (*Organization, error)
}

type ContractRepository interface {
	Create(ctx context.Context, contract *ServiceContract) error
	Update(ctx context.Context, contract *ServiceContract) error
	GetByID(ctx context.Context, id uint) (*ServiceContract, error)
	// ListByOrg returns contracts where orgID is either party, newest first.
	ListByOrg(ctx context.Context, orgID uint, status *vo.ContractStatus) ([]*ServiceContract, error)
	// ActivePartnerIDs returns the counterparties of orgID's active contracts.
	ActivePartnerIDs(ctx context.Context, orgID uint) ([]uint, error)
	ExistsActive(ctx context.Context, providerID, customerID uint) (bool, error)
	CountOpenByProvider(ctx context.Context, providerID uint) (int64, error)
	ListPendingByInviteEmail(ctx context.Context, email string) ([]*ServiceContract, error)
	ListActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]*ServiceContract, error)
}
