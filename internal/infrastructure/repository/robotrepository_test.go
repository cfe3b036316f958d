package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

func newRobot(t *testing.T, orgID, providerID uint, sn, name string) *robot.Robot {
	t.Helper()
	r, err := robot.NewRobot(orgID, providerID, sn, name, "RX-1", "Hall A", 1)
	require.NoError(t, err)
	return r
}

func TestRobotRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRobotRepository(newTestDB(t))

	r := newRobot(t, 10, 1, "SN-001", "Arm")
	require.NoError(t, repo.Create(ctx, r))
	require.NotZero(t, r.ID())

	got, err := repo.GetByID(ctx, r.ID())
	require.NoError(t, err)
	assert.Equal(t, "SN-001", got.SN())
	assert.Equal(t, uint(10), got.OrgID())
	assert.Equal(t, robot.StatusActive, got.Status())

	exists, err := repo.ExistsBySN(ctx, "SN-001")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRobotRepository_DuplicateSerialIsConflict(t *testing.T) {
	ctx := context.Background()
	repo := NewRobotRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, newRobot(t, 10, 1, "SN-DUP", "One")))
	err := repo.Create(ctx, newRobot(t, 11, 1, "SN-DUP", "Two"))
	assert.True(t, errors.IsConflictError(err))
}

func TestRobotRepository_SoftDeletedRobotIsHidden(t *testing.T) {
	ctx := context.Background()
	repo := NewRobotRepository(newTestDB(t))

	r := newRobot(t, 10, 1, "SN-DEL", "Gone")
	require.NoError(t, repo.Create(ctx, r))
	r.SoftDelete()
	require.NoError(t, repo.Update(ctx, r))

	_, err := repo.GetByID(ctx, r.ID())
	assert.True(t, errors.IsNotFoundError(err))

	count, err := repo.CountByOrg(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, count)

	// The serial stays taken.
	exists, err := repo.ExistsBySN(ctx, "SN-DEL")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRobotRepository_ListScopesAndKeyword(t *testing.T) {
	ctx := context.Background()
	repo := NewRobotRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, newRobot(t, 10, 1, "AA-1", "Welder")))
	require.NoError(t, repo.Create(ctx, newRobot(t, 10, 1, "AA-2", "Painter")))
	require.NoError(t, repo.Create(ctx, newRobot(t, 20, 2, "BB-1", "Welder")))

	org := uint(10)
	robots, total, err := repo.List(ctx, robot.ListFilter{OrgID: &org})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, robots, 2)

	provider := uint(2)
	_, total, err = repo.List(ctx, robot.ListFilter{ServiceProviderID: &provider})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	robots, total, err = repo.List(ctx, robot.ListFilter{Keyword: "WELD"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, r := range robots {
		assert.Equal(t, "Welder", r.Name())
	}

	status := robot.StatusMaintenance
	_, total, err = repo.List(ctx, robot.ListFilter{Status: &status})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestMaintenanceRepository_ListNewestFirstAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMaintenanceRepository(newTestDB(t))

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	older, err := robot.NewMaintenanceLog(7, nil, "inspection", "", "ann", base, nil, 1)
	require.NoError(t, err)
	newer, err := robot.NewMaintenanceLog(7, uintPtr(3), "repair", "gearbox", "bob", base.Add(48*time.Hour), nil, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	logs, total, err := repo.ListByRobot(ctx, 7, query.PageFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, logs, 2)
	assert.Equal(t, "repair", logs[0].ServiceType)
	assert.Equal(t, uint(3), *logs[0].TicketID)

	require.NoError(t, repo.Delete(ctx, older.ID))
	assert.True(t, errors.IsNotFoundError(repo.Delete(ctx, older.ID)))
}
