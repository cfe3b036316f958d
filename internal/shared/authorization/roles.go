package authorization

// Role is the closed set of user roles. The prefix names the organization side.
type Role string

const (
	RoleServiceAdmin    Role = "service_admin"
	RoleServiceEngineer Role = "service_engineer"
	RoleEndAdmin        Role = "end_admin"
	RoleEndEngineer     Role = "end_engineer"
)

var validRoles = map[Role]bool{
	RoleServiceAdmin:    true,
	RoleServiceEngineer: true,
	RoleEndAdmin:        true,
	RoleEndEngineer:     true,
}

// AllRoles lists every role in a stable order.
func AllRoles() []Role {
	return []Role{RoleServiceAdmin, RoleServiceEngineer, RoleEndAdmin, RoleEndEngineer}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsAdmin() bool {
	return r == RoleServiceAdmin || r == RoleEndAdmin
}

func (r Role) IsServiceSide() bool {
	return r == RoleServiceAdmin || r == RoleServiceEngineer
}

func (r Role) IsEndSide() bool {
	return r == RoleEndAdmin || r == RoleEndEngineer
}

func (r Role) IsEngineer() bool {
	return r == RoleServiceEngineer || r == RoleEndEngineer
}

// ParseRole returns the role and whether s named a known one.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}

// AdminRoleFor returns the admin role for an organization type, service_provider
// or end_customer.
func AdminRoleFor(orgType string) Role {
	if orgType == "service_provider" {
		return RoleServiceAdmin
	}
	return RoleEndAdmin
}

// EngineerRoleFor returns the engineer role for an organization type.
func EngineerRoleFor(orgType string) Role {
	if orgType == "service_provider" {
		return RoleServiceEngineer
	}
	return RoleEndEngineer
}
