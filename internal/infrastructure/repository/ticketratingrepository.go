package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/mappers"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	apperrors "github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

type RatingRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db, mapper: mappers.NewTicketMapper()}
}

// Create stores the ticket's single rating. A second rating is a conflict.
func (r *RatingRepository) Create(ctx context.Context, rating *ticket.Rating) error {
	model := r.mapper.RatingToModel(rating)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("ticket already rated")
		}
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return rating.SetID(model.ID)
}

func (r *RatingRepository) GetByTicket(ctx context.Context, ticketID uint) (*ticket.Rating, error) {
	var model models.RatingModel
	if err := db.GetTxFromContext(ctx, r.db).Where("ticket_id = ?", ticketID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("rating not found")
		}
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}
	return r.mapper.RatingToDomain(&model), nil
}
