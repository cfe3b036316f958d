package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

func TestOrganizationRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewOrganizationRepository(newTestDB(t))

	org, err := organization.NewOrganization("Acme Service", vo.OrgTypeServiceProvider, "ops@acme.test")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, org))

	require.NoError(t, org.SetQuotas(vo.Quotas{MaxRobots: 5, MaxCustomers: 2}))
	require.NoError(t, repo.Update(ctx, org))

	got, err := repo.GetByID(ctx, org.ID())
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quotas().MaxRobots)
	assert.Equal(t, 0, got.Quotas().MaxEngineers)

	byEmail, err := repo.GetByContactEmail(ctx, "ops@acme.test")
	require.NoError(t, err)
	assert.Equal(t, org.ID(), byEmail.ID())

	_, err = repo.GetByContactEmail(ctx, "nobody@acme.test")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestContractRepository_Queries(t *testing.T) {
	ctx := context.Background()
	repo := NewContractRepository(newTestDB(t))
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	active, err := organization.NewInvitation(1, "a@cust.test", uintPtr(10), nil, &end)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, active.Accept(10))
	require.NoError(t, repo.Update(ctx, active))

	pending, err := organization.NewInvitation(1, "b@cust.test", nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, pending))

	other, err := organization.NewInvitation(2, "a@cust.test", uintPtr(10), nil, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, other))

	partners, err := repo.ActivePartnerIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{10}, partners)

	partners, err = repo.ActivePartnerIDs(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, partners)

	ok, err := repo.ExistsActive(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.ExistsActive(ctx, 2, 10)
	require.NoError(t, err)
	assert.False(t, ok)

	open, err := repo.CountOpenByProvider(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), open)

	invites, err := repo.ListPendingByInviteEmail(ctx, "b@cust.test")
	require.NoError(t, err)
	require.Len(t, invites, 1)
	assert.Nil(t, invites[0].EndCustomerID())

	due, err := repo.ListActiveEndingBefore(ctx, end.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, active.ID(), due[0].ID())

	status := vo.ContractPending
	list, err := repo.ListByOrg(ctx, 10, &status)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, other.ID(), list[0].ID())
}
