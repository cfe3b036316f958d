package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

func TestEnforcer_MatchesStaticTable(t *testing.T) {
	e, err := NewEnforcer(nil, logger.NewNopLogger())
	require.NoError(t, err)

	actions := []permission.Action{
		permission.ActionCreate, permission.ActionRead, permission.ActionUpdate, permission.ActionDelete,
		permission.ActionAssign, permission.ActionComplete, permission.ActionConfirm, permission.ActionInvite,
	}
	resources := []permission.Resource{
		permission.ResourceOrganization, permission.ResourceUser, permission.ResourceRobot,
		permission.ResourceTicket, permission.ResourceTicketStage, permission.ResourceLibrary,
		permission.ResourceContract, permission.ResourceMaintenance, permission.ResourceTimeline,
		permission.ResourceNotification, permission.ResourceRating,
	}

	for _, role := range authorization.AllRoles() {
		for _, res := range resources {
			for _, act := range actions {
				assert.Equal(t, permission.Allows(role, res, act), e.HasPermission(role, res, act),
					"%s %s %s", role, res, act)
			}
		}
	}
}

func TestEnforcer_ManageImpliesCRUDOnly(t *testing.T) {
	e, err := NewEnforcer(nil, logger.NewNopLogger())
	require.NoError(t, err)

	assert.True(t, e.HasPermission(authorization.RoleServiceAdmin, permission.ResourceRobot, permission.ActionDelete))
	assert.False(t, e.HasPermission(authorization.RoleServiceAdmin, permission.ResourceRobot, permission.ActionAssign))
	assert.False(t, e.HasPermission(authorization.RoleEndEngineer, permission.ResourceContract, permission.ActionRead))
}

func TestEnforcer_PersistedSyncIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	first, err := NewEnforcer(db, logger.NewNopLogger())
	require.NoError(t, err)
	rules, err := first.Policies()
	require.NoError(t, err)
	assert.Len(t, rules, len(permission.Grants()))

	// A stale row written by an older release is removed on the next start.
	require.NoError(t, db.Exec("INSERT INTO casbin_rule (ptype, v0, v1, v2) VALUES ('p', 'end_engineer', 'contract', 'delete')").Error)

	second, err := NewEnforcer(db, logger.NewNopLogger())
	require.NoError(t, err)
	rules, err = second.Policies()
	require.NoError(t, err)
	assert.Len(t, rules, len(permission.Grants()))
	assert.False(t, second.HasPermission(authorization.RoleEndEngineer, permission.ResourceContract, permission.ActionDelete))

	var count int64
	require.NoError(t, db.Table("casbin_rule").Count(&count).Error)
	assert.Equal(t, int64(len(permission.Grants())), count)
}
