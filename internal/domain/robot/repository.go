package robot

import (
	"context"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

type Repository interface {
	Create(ctx context.Context, robot *Robot) error
	Update(ctx context.Context, robot *Robot) error
	// GetByID excludes soft-deleted robots.
	GetByID(ctx context.Context, id uint) (*Robot, error)
	ExistsBySN(ctx context.Context, sn string) (bool, error)
	CountByOrg(ctx context.Context, orgID uint) (int64, error)
	List(ctx context.Context, filter ListFilter) ([]*Robot, int64, error)
}

// ListFilter scopes a listing to an owner or a servicer.
type ListFilter struct {
	query.BaseFilter
	OrgID             *uint
	ServiceProviderID *uint
	Status            *Status
	Keyword           string
}

type MaintenanceRepository interface {
	Create(ctx context.Context, log *MaintenanceLog) error
	GetByID(ctx context.Context, id uint) (*MaintenanceLog, error)
	ListByRobot(ctx context.Context, robotID uint, page query.PageFilter) ([]*MaintenanceLog, int64, error)
	Delete(ctx context.Context, id uint) error
}
