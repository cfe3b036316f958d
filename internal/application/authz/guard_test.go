package authz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/library"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
)

const (
	orgProvider   uint = 10
	orgProvider2  uint = 11
	orgCustomer   uint = 20
	orgCustomer2  uint = 21
	engineerID    uint = 500
	otherEngineer uint = 501
)

func testTicket(t *testing.T, customerID, providerID uint, assignee *uint) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(1, "RB00001", "t", "", 7, customerID, providerID,
		vo.StatusOpen, vo.PriorityMedium, assignee, 1, nil, "", now, now)
	require.NoError(t, err)
	return tk
}

func principal(role authorization.Role, orgID, userID uint) *authorization.Principal {
	return authorization.NewPrincipal(userID, orgID, role, "u@x.io", 1)
}

func TestCanAccessTicket(t *testing.T) {
	assigned := engineerID
	tk := testTicket(t, orgCustomer, orgProvider, &assigned)
	linked := NewActiveLinks([]uint{orgCustomer})
	none := NewActiveLinks(nil)

	tests := []struct {
		name  string
		p     *authorization.Principal
		links ActiveLinks
		want  bool
	}{
		{"service admin with active contract", principal(authorization.RoleServiceAdmin, orgProvider, 1), linked, true},
		{"service admin of unrelated provider", principal(authorization.RoleServiceAdmin, orgProvider2, 2), none, false},
		{"end admin of owning customer", principal(authorization.RoleEndAdmin, orgCustomer, 3), none, true},
		{"end admin of another customer", principal(authorization.RoleEndAdmin, orgCustomer2, 4), none, false},
		{"end admin unaffected by links", principal(authorization.RoleEndAdmin, orgCustomer2, 4), NewActiveLinks([]uint{orgCustomer}), false},
		{"assigned engineer of unrelated org", principal(authorization.RoleServiceEngineer, orgProvider2, engineerID), none, true},
		{"provider engineer by membership", principal(authorization.RoleServiceEngineer, orgProvider, otherEngineer), none, true},
		{"customer engineer by membership", principal(authorization.RoleEndEngineer, orgCustomer, otherEngineer), none, true},
		{"outside engineer", principal(authorization.RoleEndEngineer, orgCustomer2, otherEngineer), none, false},
		{"unknown role", principal(authorization.Role("guest"), orgCustomer, 9), linked, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessTicket(tt.p, tk, tt.links))
		})
	}

	assert.False(t, CanAccessTicket(nil, tk, linked))
}

func TestCanAccessRobot(t *testing.T) {
	now := time.Now().UTC()
	r, err := robot.ReconstructRobot(7, orgCustomer, orgProvider, "SN", "Welder", "", "", robot.StatusActive, false, 1, now, now)
	require.NoError(t, err)

	none := NewActiveLinks(nil)

	assert.True(t, CanAccessRobot(principal(authorization.RoleServiceAdmin, orgProvider2, 1), r, NewActiveLinks([]uint{orgCustomer})))
	assert.False(t, CanAccessRobot(principal(authorization.RoleServiceAdmin, orgProvider, 1), r, none), "servicer without contract")
	assert.True(t, CanAccessRobot(principal(authorization.RoleEndAdmin, orgCustomer, 1), r, none))
	assert.False(t, CanAccessRobot(principal(authorization.RoleEndAdmin, orgCustomer2, 1), r, none))
	assert.True(t, CanAccessRobot(principal(authorization.RoleServiceEngineer, orgProvider, 1), r, none))
	assert.True(t, CanAccessRobot(principal(authorization.RoleEndEngineer, orgCustomer, 1), r, none))
	assert.False(t, CanAccessRobot(principal(authorization.RoleEndEngineer, orgCustomer2, 1), r, none))
}

func TestCanAccessLibraryDoc(t *testing.T) {
	now := time.Now().UTC()
	doc, err := library.ReconstructDocument(3, orgProvider, "E42", "", "", "", "", "", nil, 1, now, now)
	require.NoError(t, err)

	assert.True(t, CanAccessLibraryDoc(principal(authorization.RoleServiceEngineer, orgProvider, 1), doc, NewActiveLinks(nil)))
	assert.False(t, CanAccessLibraryDoc(principal(authorization.RoleServiceAdmin, orgProvider2, 1), doc, NewActiveLinks(nil)))
	assert.True(t, CanAccessLibraryDoc(principal(authorization.RoleEndEngineer, orgCustomer, 1), doc, NewActiveLinks([]uint{orgProvider})))
	assert.False(t, CanAccessLibraryDoc(principal(authorization.RoleEndAdmin, orgCustomer, 1), doc, NewActiveLinks([]uint{orgProvider2})))
}
