package ticket

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/ticket/usecases"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/utils"
)

type CreateTicketRequest struct {
	RobotID     uint   `json:"robot_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
}

func (r *CreateTicketRequest) ToCommand(p *authorization.Principal) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		RobotID:     r.RobotID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Principal:   p,
	}
}

type UpdateTicketRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status      *string `json:"status" binding:"omitempty,oneof=open in_progress pending resolved closed"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint, p *authorization.Principal) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
		Principal:   p,
	}
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=10000"`
}

// UpsertStageRequest writes one workflow stage. expected_date accepts
// YYYY-MM-DD or RFC3339.
type UpsertStageRequest struct {
	StageType    string   `json:"stage_type" binding:"required,stage_type"`
	Content      string   `json:"content"`
	Attachments  []string `json:"attachments"`
	ExpectedDate string   `json:"expected_date"`
}

func (r *UpsertStageRequest) ToCommand(ticketID uint, p *authorization.Principal) (usecases.UpsertStageCommand, error) {
	expected, err := utils.ParseOptionalDate("expected_date", r.ExpectedDate)
	if err != nil {
		return usecases.UpsertStageCommand{}, err
	}
	return usecases.UpsertStageCommand{
		TicketID:     ticketID,
		StageType:    r.StageType,
		Content:      r.Content,
		Attachments:  r.Attachments,
		ExpectedDate: expected,
		Principal:    p,
	}, nil
}

type CompleteSummaryRequest struct {
	CompletedAt string `json:"completed_at"`
	Content     string `json:"content"`
}

type ConfirmRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

// RegisterValidators installs the stage_type binding tag.
func RegisterValidators() error {
	return utils.RegisterValidation("stage_type", func(fl validator.FieldLevel) bool {
		return vo.StageType(fl.Field().String()).IsValid()
	})
}

func parseTicketID(c *gin.Context) (uint, error) {
	return utils.ParseIDParam(c, "id", "ticket")
}
