package dto

import (
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
)

type TicketDTO struct {
	ID                uint       `json:"id"`
	Number            string     `json:"ticket_number"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	RobotID           uint       `json:"robot_id"`
	CustomerID        uint       `json:"customer_id"`
	ServiceProviderID uint       `json:"service_provider_id"`
	Status            string     `json:"status"`
	Priority          string     `json:"priority"`
	AssignedTo        *uint      `json:"assigned_to"`
	CreatedBy         uint       `json:"created_by"`
	ResolvedAt        *time.Time `json:"resolved_at"`
	ResolutionNotes   string     `json:"resolution_notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type StageDTO struct {
	ID           uint       `json:"id,omitempty"`
	TicketID     uint       `json:"ticket_id"`
	StageType    string     `json:"stage_type"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Attachments  []string   `json:"attachments"`
	ExpectedDate *time.Time `json:"expected_date"`
	Status       string     `json:"status"`
	CompletedAt  *time.Time `json:"completed_at"`
	UpdatedBy    uint       `json:"updated_by,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type CommentDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type RatingDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	RatedBy   uint      `json:"rated_by"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketDetailDTO is a ticket with its comments and, once confirmed, its rating.
type TicketDetailDTO struct {
	TicketDTO
	Comments []CommentDTO `json:"comments"`
	Rating   *RatingDTO   `json:"rating,omitempty"`
}

func ToTicketDTO(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:                t.ID(),
		Number:            t.Number(),
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

func ToStageDTO(s *ticket.Stage) StageDTO {
	updatedAt := s.UpdatedAt()
	return StageDTO{
		ID:           s.ID(),
		TicketID:     s.TicketID(),
		StageType:    s.StageType().String(),
		Title:        s.StageType().Title(),
		Content:      s.Content(),
		Attachments:  s.Attachments(),
		ExpectedDate: s.ExpectedDate(),
		Status:       s.Status().String(),
		CompletedAt:  s.CompletedAt(),
		UpdatedBy:    s.UpdatedBy(),
		UpdatedAt:    &updatedAt,
	}
}

// EmptyStageDTO reports a stage slot nobody has written yet.
func EmptyStageDTO(ticketID uint, stageType vo.StageType) StageDTO {
	return StageDTO{
		TicketID:    ticketID,
		StageType:   stageType.String(),
		Title:       stageType.Title(),
		Attachments: []string{},
		Status:      vo.StageNotStarted.String(),
	}
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}

func ToRatingDTO(r *ticket.Rating) *RatingDTO {
	if r == nil {
		return nil
	}
	return &RatingDTO{
		ID:        r.ID(),
		TicketID:  r.TicketID(),
		Score:     r.Score(),
		Comment:   r.Comment(),
		RatedBy:   r.RatedBy(),
		CreatedAt: r.CreatedAt(),
	}
}
