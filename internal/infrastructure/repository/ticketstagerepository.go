package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/mappers"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	apperrors "github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

type StageRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewStageRepository(db *gorm.DB) *StageRepository {
	return &StageRepository{db: db, mapper: mappers.NewTicketMapper()}
}

func (r *StageRepository) Get(ctx context.Context, ticketID uint, stageType vo.StageType) (*ticket.Stage, error) {
	var model models.TicketStageModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ? AND stage_type = ?", ticketID, stageType.String()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("stage not found", stageType.String())
		}
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}
	return r.mapper.StageToDomain(&model)
}

func (r *StageRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Stage, error) {
	var list []*models.TicketStageModel
	if err := db.GetTxFromContext(ctx, r.db).Where("ticket_id = ?", ticketID).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}

	stages := make([]*ticket.Stage, 0, len(list))
	for _, m := range list {
		s, err := r.mapper.StageToDomain(m)
		if err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return stages, nil
}

func (r *StageRepository) Upsert(ctx context.Context, stage *ticket.Stage) error {
	model := r.mapper.StageToModel(stage)
	tx := db.GetTxFromContext(ctx, r.db)

	if model.ID != 0 {
		if err := updateAll(tx, &models.TicketStageModel{}, model.ID, model).Error; err != nil {
			return fmt.Errorf("failed to update stage: %w", err)
		}
		return nil
	}

	var existing models.TicketStageModel
	err := tx.Select("id").Where("ticket_id = ? AND stage_type = ?", model.TicketID, model.StageType).First(&existing).Error
	switch {
	case err == nil:
		model.ID = existing.ID
		if err := updateAll(tx, &models.TicketStageModel{}, model.ID, model).Error; err != nil {
			return fmt.Errorf("failed to update stage: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create stage: %w", err)
		}
	default:
		return fmt.Errorf("failed to look up stage: %w", err)
	}
	return stage.SetID(model.ID)
}
