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

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]string{
	"id":            "id",
	"ticket_number": "ticket_number",
	"title":         "title",
	"status":        "status",
	"priority":      "priority",
	"created_at":    "created_at",
	"updated_at":    "updated_at",
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("ticket number already allocated", t.Number())
		}
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := updateAll(tx, &models.TicketModel{}, model.ID, model).Error; err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

// Delete removes the ticket and every row hanging off it in one transaction.
func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		children := []interface{}{
			&models.TicketStageModel{},
			&models.TicketIntervalModel{},
			&models.CommentModel{},
			&models.RatingModel{},
		}
		for _, child := range children {
			if err := tx.Where("ticket_id = ?", ticketID).Delete(child).Error; err != nil {
				return fmt.Errorf("failed to delete ticket children: %w", err)
			}
		}

		result := tx.Delete(&models.TicketModel{}, ticketID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("ticket not found", fmt.Sprintf("%d", ticketID))
		}
		return nil
	})
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found", fmt.Sprintf("%d", ticketID))
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.TicketModel{})

	switch {
	case filter.CustomerID != nil && filter.ServiceProviderID != nil:
		q = q.Where("customer_id = ? OR service_provider_id = ?", *filter.CustomerID, *filter.ServiceProviderID)
	case filter.CustomerID != nil:
		q = q.Where("customer_id = ?", *filter.CustomerID)
	case filter.ServiceProviderID != nil:
		q = q.Where("service_provider_id = ?", *filter.ServiceProviderID)
	}
	if len(filter.CustomerIDs) > 0 {
		q = q.Where("customer_id IN ?", filter.CustomerIDs)
	}
	if filter.AssignedTo != nil {
		q = q.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.RobotID != nil {
		q = q.Where("robot_id = ?", *filter.RobotID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", filter.Priority.String())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var list []*models.TicketModel
	err := q.Order(filter.OrderClause(allowedTicketOrderByFields, "created_at DESC")).
		Order("id DESC").
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(list))
	for _, m := range list {
		t, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map ticket %d: %w", m.ID, err)
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}

// MaxNumber orders by length first so RB100000 sorts after RB99999.
func (r *TicketRepository) MaxNumber(ctx context.Context) (string, error) {
	var model models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).
		Select("ticket_number").
		Order("LENGTH(ticket_number) DESC").
		Order("ticket_number DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read max ticket number: %w", err)
	}
	return model.TicketNumber, nil
}
