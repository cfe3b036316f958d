package valueobjects

import "fmt"

type OrgType string

const (
	OrgTypeServiceProvider OrgType = "service_provider"
	OrgTypeEndCustomer     OrgType = "end_customer"
)

func (t OrgType) String() string {
	return string(t)
}

func (t OrgType) IsValid() bool {
	return t == OrgTypeServiceProvider || t == OrgTypeEndCustomer
}

func (t OrgType) IsServiceProvider() bool {
	return t == OrgTypeServiceProvider
}

func NewOrgType(s string) (OrgType, error) {
	t := OrgType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid organization type: %s", s)
	}
	return t, nil
}

type OrgStatus string

const (
	OrgStatusActive    OrgStatus = "active"
	OrgStatusInactive  OrgStatus = "inactive"
	OrgStatusSuspended OrgStatus = "suspended"
)

func (s OrgStatus) String() string {
	return string(s)
}

func (s OrgStatus) IsValid() bool {
	return s == OrgStatusActive || s == OrgStatusInactive || s == OrgStatusSuspended
}

type ContractStatus string

const (
	ContractPending    ContractStatus = "pending"
	ContractActive     ContractStatus = "active"
	ContractTerminated ContractStatus = "terminated"
	ContractExpired    ContractStatus = "expired"
)

func (s ContractStatus) String() string {
	return string(s)
}

func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractPending, ContractActive, ContractTerminated, ContractExpired:
		return true
	}
	return false
}

// IsOpen reports whether the contract still counts toward the customer quota.
func (s ContractStatus) IsOpen() bool {
	return s == ContractPending || s == ContractActive
}

// Quotas caps what an organization may hold. Zero means unlimited.
type Quotas struct {
	MaxRobots    int
	MaxCustomers int
	MaxEngineers int
}

func (q Quotas) Validate() error {
	if q.MaxRobots < 0 || q.MaxCustomers < 0 || q.MaxEngineers < 0 {
		return fmt.Errorf("quotas cannot be negative")
	}
	return nil
}

// Allows reports whether one more item fits under limit.
func Allows(limit int, current int64) bool {
	return limit == 0 || current < int64(limit)
}
