package mappers

import (
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	StageToModel(s *ticket.Stage) *models.TicketStageModel
	StageToDomain(model *models.TicketStageModel) (*ticket.Stage, error)

	IntervalToModel(i *ticket.TimelineInterval) *models.TicketIntervalModel
	IntervalToDomain(model *models.TicketIntervalModel) *ticket.TimelineInterval

	CommentToModel(c *ticket.Comment) *models.CommentModel
	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)

	RatingToModel(r *ticket.Rating) *models.RatingModel
	RatingToDomain(model *models.RatingModel) *ticket.Rating
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:                t.ID(),
		TicketNumber:      t.Number(),
		Title:             t.Title(),
		Description:       t.Description(),
		RobotID:           t.RobotID(),
		CustomerID:        t.CustomerID(),
		ServiceProviderID: t.ServiceProviderID(),
		Status:            t.Status().String(),
		Priority:          t.Priority().String(),
		AssignedTo:        t.AssignedTo(),
		CreatedBy:         t.CreatedBy(),
		ResolvedAt:        t.ResolvedAt(),
		ResolutionNotes:   t.ResolutionNotes(),
		CreatedAt:         t.CreatedAt(),
		UpdatedAt:         t.UpdatedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status: %w", err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority: %w", err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.TicketNumber,
		model.Title,
		model.Description,
		model.RobotID,
		model.CustomerID,
		model.ServiceProviderID,
		status,
		priority,
		model.AssignedTo,
		model.CreatedBy,
		model.ResolvedAt,
		model.ResolutionNotes,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *TicketMapperImpl) StageToModel(s *ticket.Stage) *models.TicketStageModel {
	return &models.TicketStageModel{
		ID:           s.ID(),
		TicketID:     s.TicketID(),
		StageType:    s.StageType().String(),
		Content:      s.Content(),
		Attachments:  marshalStrings(s.Attachments()),
		ExpectedDate: s.ExpectedDate(),
		Status:       s.Status().String(),
		CompletedAt:  s.CompletedAt(),
		UpdatedBy:    s.UpdatedBy(),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

func (m *TicketMapperImpl) StageToDomain(model *models.TicketStageModel) (*ticket.Stage, error) {
	attachments, err := unmarshalStrings(model.Attachments)
	if err != nil {
		return nil, err
	}
	return ticket.ReconstructStage(
		model.ID,
		model.TicketID,
		vo.StageType(model.StageType),
		model.Content,
		attachments,
		model.ExpectedDate,
		vo.StageStatus(model.Status),
		model.CompletedAt,
		model.UpdatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *TicketMapperImpl) IntervalToModel(i *ticket.TimelineInterval) *models.TicketIntervalModel {
	return &models.TicketIntervalModel{
		ID:        i.ID,
		TicketID:  i.TicketID,
		StageType: i.StageType.String(),
		StartDate: i.StartDate,
		EndDate:   i.EndDate,
		Status:    i.Status.String(),
		UpdatedAt: i.UpdatedAt,
	}
}

func (m *TicketMapperImpl) IntervalToDomain(model *models.TicketIntervalModel) *ticket.TimelineInterval {
	return &ticket.TimelineInterval{
		ID:        model.ID,
		TicketID:  model.TicketID,
		StageType: vo.StageType(model.StageType),
		StartDate: model.StartDate,
		EndDate:   model.EndDate,
		Status:    vo.StageStatus(model.Status),
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	if model == nil {
		return nil, nil
	}
	return ticket.ReconstructComment(model.ID, model.TicketID, model.UserID, model.Content, model.CreatedAt)
}

func (m *TicketMapperImpl) RatingToModel(r *ticket.Rating) *models.RatingModel {
	return &models.RatingModel{
		ID:        r.ID(),
		TicketID:  r.TicketID(),
		Score:     r.Score(),
		Comment:   r.Comment(),
		RatedBy:   r.RatedBy(),
		OrgID:     r.OrgID(),
		CreatedAt: r.CreatedAt(),
	}
}

func (m *TicketMapperImpl) RatingToDomain(model *models.RatingModel) *ticket.Rating {
	return ticket.ReconstructRating(model.ID, model.TicketID, model.Score, model.Comment, model.RatedBy, model.OrgID, model.CreatedAt)
}
