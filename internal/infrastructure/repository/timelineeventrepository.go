package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/mappers"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	apperrors "github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

// TimelineEventRepository stores the append-only robot history.
type TimelineEventRepository struct {
	db *gorm.DB
}

func NewTimelineEventRepository(db *gorm.DB) *TimelineEventRepository {
	return &TimelineEventRepository{db: db}
}

func (r *TimelineEventRepository) Append(ctx context.Context, event *timeline.Event) error {
	model, err := mappers.TimelineEventToModel(event)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append timeline event: %w", err)
	}
	return event.SetID(model.ID)
}

func (r *TimelineEventRepository) GetByID(ctx context.Context, id uint) (*timeline.Event, error) {
	var model models.TimelineEventModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("timeline event not found", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to get timeline event: %w", err)
	}
	return mappers.TimelineEventToDomain(&model)
}

func (r *TimelineEventRepository) List(ctx context.Context, filter timeline.Filter) ([]*timeline.Event, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).Model(&models.TimelineEventModel{})

	if filter.RobotID != nil {
		q = q.Where("robot_id = ?", *filter.RobotID)
	}
	if filter.TicketID != nil {
		q = q.Where("ticket_id = ?", *filter.TicketID)
	}
	if len(filter.EventTypes) > 0 {
		types := make([]string, len(filter.EventTypes))
		for i, t := range filter.EventTypes {
			types[i] = t.String()
		}
		q = q.Where("event_type IN ?", types)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", *filter.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count timeline events: %w", err)
	}

	var list []*models.TimelineEventModel
	err := q.Order("created_at DESC, id DESC").
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list timeline events: %w", err)
	}

	events := make([]*timeline.Event, 0, len(list))
	for _, m := range list {
		e, err := mappers.TimelineEventToDomain(m)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, nil
}

func (r *TimelineEventRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.TimelineEventModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete timeline event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("timeline event not found", fmt.Sprintf("%d", id))
	}
	return nil
}
