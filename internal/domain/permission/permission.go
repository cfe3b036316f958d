// Package permission holds the static role to (resource, action) grant table.
package permission

import "github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"

type Resource string

const (
	ResourceOrganization Resource = "organization"
	ResourceUser         Resource = "user"
	ResourceRobot        Resource = "robot"
	ResourceTicket       Resource = "ticket"
	ResourceTicketStage  Resource = "ticket_stage"
	ResourceLibrary      Resource = "library"
	ResourceContract     Resource = "contract"
	ResourceMaintenance  Resource = "maintenance"
	ResourceTimeline     Resource = "timeline"
	ResourceNotification Resource = "notification"
	ResourceRating       Resource = "rating"
)

type Action string

const (
	ActionCreate   Action = "create"
	ActionRead     Action = "read"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionAssign   Action = "assign"
	ActionComplete Action = "complete"
	ActionConfirm  Action = "confirm"
	ActionInvite   Action = "invite"
	// ActionManage implies create, read, update and delete on its resource.
	ActionManage Action = "manage"
)

// Grant is one row of the matrix.
type Grant struct {
	Role     authorization.Role
	Resource Resource
	Action   Action
}

// Checker answers matrix questions. Implementations never error; a failure
// reads as deny.
type Checker interface {
	HasPermission(role authorization.Role, resource Resource, action Action) bool
}

var grantTable = map[authorization.Role]map[Resource][]Action{
	authorization.RoleServiceAdmin: {
		ResourceOrganization: {ActionManage},
		ResourceUser:         {ActionManage},
		ResourceRobot:        {ActionManage},
		ResourceTicket:       {ActionManage, ActionAssign},
		ResourceTicketStage:  {ActionManage, ActionComplete},
		ResourceLibrary:      {ActionManage},
		ResourceContract:     {ActionManage, ActionInvite},
		ResourceMaintenance:  {ActionManage},
		ResourceTimeline:     {ActionRead, ActionCreate, ActionDelete},
		ResourceNotification: {ActionRead, ActionUpdate},
		ResourceRating:       {ActionRead},
	},
	authorization.RoleServiceEngineer: {
		ResourceOrganization: {ActionRead},
		ResourceRobot:        {ActionRead, ActionUpdate},
		ResourceTicket:       {ActionRead, ActionUpdate},
		ResourceTicketStage:  {ActionCreate, ActionRead, ActionUpdate, ActionComplete},
		ResourceLibrary:      {ActionRead, ActionCreate, ActionUpdate},
		ResourceMaintenance:  {ActionCreate, ActionRead},
		ResourceTimeline:     {ActionRead, ActionCreate, ActionDelete},
		ResourceNotification: {ActionRead, ActionUpdate},
		ResourceRating:       {ActionRead},
	},
	authorization.RoleEndAdmin: {
		ResourceOrganization: {ActionRead, ActionUpdate},
		ResourceUser:         {ActionManage},
		ResourceRobot:        {ActionManage},
		ResourceTicket:       {ActionCreate, ActionRead, ActionUpdate, ActionConfirm},
		ResourceTicketStage:  {ActionCreate, ActionRead, ActionUpdate},
		ResourceLibrary:      {ActionRead},
		ResourceContract:     {ActionRead, ActionUpdate},
		ResourceMaintenance:  {ActionRead},
		ResourceTimeline:     {ActionRead, ActionCreate, ActionDelete},
		ResourceNotification: {ActionRead, ActionUpdate},
		ResourceRating:       {ActionCreate, ActionRead},
	},
	authorization.RoleEndEngineer: {
		ResourceOrganization: {ActionRead},
		ResourceRobot:        {ActionRead, ActionUpdate},
		ResourceTicket:       {ActionCreate, ActionRead, ActionUpdate, ActionConfirm},
		ResourceTicketStage:  {ActionCreate, ActionRead, ActionUpdate},
		ResourceLibrary:      {ActionRead},
		ResourceMaintenance:  {ActionCreate, ActionRead},
		ResourceTimeline:     {ActionRead, ActionCreate, ActionDelete},
		ResourceNotification: {ActionRead, ActionUpdate},
	},
}

var resourceOrder = []Resource{
	ResourceOrganization,
	ResourceUser,
	ResourceRobot,
	ResourceTicket,
	ResourceTicketStage,
	ResourceLibrary,
	ResourceContract,
	ResourceMaintenance,
	ResourceTimeline,
	ResourceNotification,
	ResourceRating,
}

// Grants flattens the table in a stable order.
func Grants() []Grant {
	var out []Grant
	for _, role := range authorization.AllRoles() {
		for _, res := range resourceOrder {
			for _, act := range grantTable[role][res] {
				out = append(out, Grant{Role: role, Resource: res, Action: act})
			}
		}
	}
	return out
}

// Allows evaluates the table directly: an exact match, or a manage grant
// covering one of the four CRUD actions.
func Allows(role authorization.Role, resource Resource, action Action) bool {
	for _, granted := range grantTable[role][resource] {
		if granted == action {
			return true
		}
		if granted == ActionManage && isCRUD(action) {
			return true
		}
	}
	return false
}

func isCRUD(a Action) bool {
	return a == ActionCreate || a == ActionRead || a == ActionUpdate || a == ActionDelete
}

// StaticChecker evaluates the grant table in process.
type StaticChecker struct{}

func (StaticChecker) HasPermission(role authorization.Role, resource Resource, action Action) bool {
	return Allows(role, resource, action)
}
