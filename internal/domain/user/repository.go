package user

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	// ListByOrgAndRoles returns the active users of an org holding any of roles.
	ListByOrgAndRoles(ctx context.Context, orgID uint, roles []authorization.Role) ([]*User, error)
	CountByOrgAndRoles(ctx context.Context, orgID uint, roles []authorization.Role) (int64, error)
}

type ListFilter struct {
	query.BaseFilter
	OrgID uint
	Role  *authorization.Role
}
