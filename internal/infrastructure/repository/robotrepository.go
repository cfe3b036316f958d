package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/mappers"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	apperrors "github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

// allowedRobotOrderByFields maps API sort keys to columns.
var allowedRobotOrderByFields = map[string]string{
	"id":         "id",
	"sn":         "sn",
	"name":       "name",
	"status":     "status",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type RobotRepository struct {
	db     *gorm.DB
	mapper mappers.RobotMapper
}

func NewRobotRepository(db *gorm.DB) *RobotRepository {
	return &RobotRepository{
		db:     db,
		mapper: mappers.NewRobotMapper(),
	}
}

// Create inserts the robot. The serial number is unique across all robots,
// deleted ones included.
func (r *RobotRepository) Create(ctx context.Context, rb *robot.Robot) error {
	model := r.mapper.ToModel(rb)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("serial number already exists", rb.SN())
		}
		return fmt.Errorf("failed to create robot: %w", err)
	}
	return rb.SetID(model.ID)
}

func (r *RobotRepository) Update(ctx context.Context, rb *robot.Robot) error {
	model := r.mapper.ToModel(rb)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := updateAll(tx, &models.RobotModel{}, model.ID, model).Error; err != nil {
		return fmt.Errorf("failed to update robot: %w", err)
	}
	return nil
}

func (r *RobotRepository) GetByID(ctx context.Context, id uint) (*robot.Robot, error) {
	var model models.RobotModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Scopes(db.NotDeleted()).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("robot not found", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to get robot: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *RobotRepository) ExistsBySN(ctx context.Context, sn string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.RobotModel{}).Where("sn = ?", sn).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check serial number: %w", err)
	}
	return count > 0, nil
}

func (r *RobotRepository) CountByOrg(ctx context.Context, orgID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.RobotModel{}).Scopes(db.NotDeleted()).Where("org_id = ?", orgID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count robots: %w", err)
	}
	return count, nil
}

func (r *RobotRepository) List(ctx context.Context, filter robot.ListFilter) ([]*robot.Robot, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.RobotModel{}).Scopes(db.NotDeleted())

	if filter.OrgID != nil {
		q = q.Where("org_id = ?", *filter.OrgID)
	}
	if filter.ServiceProviderID != nil {
		q = q.Where("service_provider_id = ?", *filter.ServiceProviderID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", filter.Status.String())
	}
	if filter.Keyword != "" {
		pattern := likePattern(filter.Keyword)
		q = q.Where("LOWER(sn) LIKE ? OR LOWER(name) LIKE ? OR LOWER(location) LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count robots: %w", err)
	}

	var list []*models.RobotModel
	err := q.Order(filter.OrderClause(allowedRobotOrderByFields, "created_at DESC")).
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list robots: %w", err)
	}

	robots, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return robots, total, nil
}
