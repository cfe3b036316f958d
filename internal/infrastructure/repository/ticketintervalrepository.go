package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/mappers"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
)

type IntervalRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewIntervalRepository(db *gorm.DB) *IntervalRepository {
	return &IntervalRepository{db: db, mapper: mappers.NewTicketMapper()}
}

func (r *IntervalRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.TimelineInterval, error) {
	var list []*models.TicketIntervalModel
	if err := db.GetTxFromContext(ctx, r.db).Where("ticket_id = ?", ticketID).Order("start_date ASC, id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list timeline intervals: %w", err)
	}

	intervals := make([]*ticket.TimelineInterval, len(list))
	for i, m := range list {
		intervals[i] = r.mapper.IntervalToDomain(m)
	}
	return intervals, nil
}

// Upsert writes the interval keyed by (ticket, stage type).
func (r *IntervalRepository) Upsert(ctx context.Context, interval *ticket.TimelineInterval) error {
	interval.UpdatedAt = biztime.NowUTC()
	model := r.mapper.IntervalToModel(interval)

	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticket_id"}, {Name: "stage_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"start_date", "end_date", "status", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert timeline interval: %w", err)
	}
	if model.ID != 0 {
		interval.ID = model.ID
	}
	return nil
}
