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

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db, mapper: mappers.NewTicketMapper()}
}

func (r *CommentRepository) Create(ctx context.Context, comment *ticket.Comment) error {
	model := r.mapper.CommentToModel(comment)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return comment.SetID(model.ID)
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	var model models.CommentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("comment not found", fmt.Sprintf("%d", commentID))
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return r.mapper.CommentToDomain(&model)
}

// ListByTicket returns comments oldest first.
func (r *CommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var list []*models.CommentModel
	if err := db.GetTxFromContext(ctx, r.db).Where("ticket_id = ?", ticketID).Order("created_at ASC, id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(list))
	for _, m := range list {
		c, err := r.mapper.CommentToDomain(m)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.CommentModel{}, commentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("comment not found", fmt.Sprintf("%d", commentID))
	}
	return nil
}
