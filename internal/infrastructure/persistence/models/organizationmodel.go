package models

import (
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/constants"
)

type OrganizationModel struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"size:200;not null"`
	Type             string `gorm:"size:30;not null;index"`
	Status           string `gorm:"size:20;not null;default:active"`
	MaxRobots        int    `gorm:"not null;default:0"`
	MaxCustomers     int    `gorm:"not null;default:0"`
	MaxEngineers     int    `gorm:"not null;default:0"`
	SubscriptionPlan string `gorm:"size:50;not null;default:basic"`
	ContactEmail     string `gorm:"size:255;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (OrganizationModel) TableName() string {
	return constants.TableOrganizations
}

// ServiceContractModel has no foreign keys; EndCustomerID stays null until the
// invited customer registers.
type ServiceContractModel struct {
	ID                uint   `gorm:"primaryKey"`
	ServiceProviderID uint   `gorm:"not null;index:idx_contract_parties"`
	EndCustomerID     *uint  `gorm:"index:idx_contract_parties"`
	InviteEmail       string `gorm:"size:255;not null;index"`
	Status            string `gorm:"size:20;not null;index"`
	StartDate         *time.Time
	EndDate           *time.Time `gorm:"index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ServiceContractModel) TableName() string {
	return constants.TableServiceContracts
}
