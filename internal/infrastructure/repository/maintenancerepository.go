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
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

type MaintenanceRepository struct {
	db     *gorm.DB
	mapper mappers.RobotMapper
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{
		db:     db,
		mapper: mappers.NewRobotMapper(),
	}
}

func (r *MaintenanceRepository) Create(ctx context.Context, log *robot.MaintenanceLog) error {
	model := r.mapper.MaintenanceToModel(log)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create maintenance log: %w", err)
	}
	log.ID = model.ID
	return nil
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id uint) (*robot.MaintenanceLog, error) {
	var model models.MaintenanceLogModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("maintenance log not found", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to get maintenance log: %w", err)
	}
	return r.mapper.MaintenanceToDomain(&model), nil
}

// ListByRobot returns the robot's logs, most recently performed first.
func (r *MaintenanceRepository) ListByRobot(ctx context.Context, robotID uint, page query.PageFilter) ([]*robot.MaintenanceLog, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.MaintenanceLogModel{}).Where("robot_id = ?", robotID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count maintenance logs: %w", err)
	}

	var list []*models.MaintenanceLogModel
	err := q.Order("performed_at DESC, id DESC").Limit(page.Limit()).Offset(page.Offset()).Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list maintenance logs: %w", err)
	}

	logs := make([]*robot.MaintenanceLog, len(list))
	for i, m := range list {
		logs[i] = r.mapper.MaintenanceToDomain(m)
	}
	return logs, total, nil
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.MaintenanceLogModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete maintenance log: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("maintenance log not found", fmt.Sprintf("%d", id))
	}
	return nil
}
