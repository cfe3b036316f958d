package organization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
)

func TestNewOrganization(t *testing.T) {
	org, err := NewOrganization("  Acme Robotics ", vo.OrgTypeServiceProvider, "Ops@Acme.io")
	require.NoError(t, err)
	assert.Equal(t, "Acme Robotics", org.Name())
	assert.Equal(t, "ops@acme.io", org.ContactEmail())
	assert.True(t, org.IsActive())

	_, err = NewOrganization("", vo.OrgTypeEndCustomer, "")
	assert.Error(t, err)
	_, err = NewOrganization("X", vo.OrgType("partner"), "")
	assert.Error(t, err)
}

func TestOrganization_SetQuotas(t *testing.T) {
	org, _ := NewOrganization("Acme", vo.OrgTypeEndCustomer, "")
	assert.Error(t, org.SetQuotas(vo.Quotas{MaxRobots: -1}))
	require.NoError(t, org.SetQuotas(vo.Quotas{MaxRobots: 2}))

	assert.True(t, vo.Allows(org.Quotas().MaxRobots, 1))
	assert.False(t, vo.Allows(org.Quotas().MaxRobots, 2))
	assert.True(t, vo.Allows(org.Quotas().MaxEngineers, 1000), "zero is unlimited")
}

func TestContractLifecycle(t *testing.T) {
	c, err := NewInvitation(1, "Buyer@Plant.com", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, vo.ContractPending, c.Status())
	assert.Equal(t, "buyer@plant.com", c.InviteEmail())
	assert.False(t, c.IsActive())

	require.NoError(t, c.Accept(2))
	assert.True(t, c.IsActive())
	assert.True(t, c.Involves(1))
	assert.True(t, c.Involves(2))
	assert.False(t, c.Involves(3))
	assert.NotNil(t, c.StartDate())

	assert.Error(t, c.Accept(2), "already active")

	require.NoError(t, c.Terminate())
	assert.Equal(t, vo.ContractTerminated, c.Status())
	assert.Error(t, c.Terminate())
}

func TestContract_BindCustomerConflict(t *testing.T) {
	other := uint(9)
	c, err := NewInvitation(1, "buyer@plant.com", &other, nil, nil)
	require.NoError(t, err)
	assert.Error(t, c.Accept(2))
}

func TestContract_ExpireIfDue(t *testing.T) {
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	c, err := NewInvitation(1, "buyer@plant.com", nil, nil, &end)
	require.NoError(t, err)

	assert.False(t, c.ExpireIfDue(end.Add(time.Hour)), "pending contracts do not expire")

	require.NoError(t, c.Accept(2))
	assert.False(t, c.ExpireIfDue(end.Add(-time.Hour)))
	assert.True(t, c.ExpireIfDue(end.Add(time.Hour)))
	assert.Equal(t, vo.ContractExpired, c.Status())
	assert.False(t, c.ExpireIfDue(end.Add(2*time.Hour)))
}

func TestNewInvitation_DateOrder(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	_, err := NewInvitation(1, "buyer@plant.com", nil, &start, &end)
	assert.Error(t, err)
}
