package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	uservo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/user/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

func createUser(t *testing.T, repo *UserRepository, orgID uint, email string, role authorization.Role) *user.User {
	t.Helper()
	addr, err := uservo.NewEmail(email)
	require.NoError(t, err)
	u, err := user.NewUser(orgID, addr, "Pat", "hash", role)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepository_EmailLookupAndUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	u := createUser(t, repo, 1, "pat@acme.test", authorization.RoleServiceAdmin)

	got, err := repo.GetByEmail(ctx, "pat@acme.test")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), got.ID())
	assert.Equal(t, authorization.RoleServiceAdmin, got.Role())

	exists, err := repo.ExistsByEmail(ctx, "pat@acme.test")
	require.NoError(t, err)
	assert.True(t, exists)

	addr, _ := uservo.NewEmail("pat@acme.test")
	dup, err := user.NewUser(2, addr, "Other", "hash", authorization.RoleEndAdmin)
	require.NoError(t, err)
	assert.True(t, errors.IsConflictError(repo.Create(ctx, dup)))

	_, err = repo.GetByID(ctx, 999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUserRepository_RoleQueriesSkipDisabledForListing(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	createUser(t, repo, 1, "admin@acme.test", authorization.RoleServiceAdmin)
	createUser(t, repo, 1, "eng1@acme.test", authorization.RoleServiceEngineer)
	disabled := createUser(t, repo, 1, "eng2@acme.test", authorization.RoleServiceEngineer)
	createUser(t, repo, 2, "eng@other.test", authorization.RoleServiceEngineer)

	disabled.Disable()
	require.NoError(t, repo.Update(ctx, disabled))

	engineers := []authorization.Role{authorization.RoleServiceEngineer}
	count, err := repo.CountByOrgAndRoles(ctx, 1, engineers)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	active, err := repo.ListByOrgAndRoles(ctx, 1, engineers)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "eng1@acme.test", active[0].Email().String())

	role := authorization.RoleServiceEngineer
	page, total, err := repo.List(ctx, user.ListFilter{OrgID: 1, Role: &role})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, page, 2)
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(newTestDB(t))

	live, err := user.NewSession(1, time.Hour)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, live))
	require.NotZero(t, live.ID)

	stale, err := user.NewSession(1, time.Minute)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, stale))

	removed, err := repo.DeleteExpired(ctx, time.Now().UTC().Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	got, err := repo.GetByToken(ctx, live.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.UserID)

	require.NoError(t, repo.DeleteByToken(ctx, live.Token))
	_, err = repo.GetByToken(ctx, live.Token)
	assert.True(t, errors.IsNotFoundError(err))
	assert.True(t, errors.IsNotFoundError(repo.DeleteByToken(ctx, live.Token)))
}
