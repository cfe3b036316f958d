package library

import (
	"github.com/automationyuli-li/RobotCare-sub001/internal/application/library/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
)

type CreateDocumentRequest struct {
	Title      string   `json:"title" binding:"required,max=200"`
	Content    string   `json:"content" binding:"required"`
	Category   string   `json:"category" binding:"max=50"`
	FaultCode  string   `json:"fault_code" binding:"max=50"`
	RobotModel string   `json:"robot_model" binding:"max=100"`
	Tags       []string `json:"tags" binding:"max=20,dive,max=50"`
}

func (r *CreateDocumentRequest) ToCommand(p *authorization.Principal) usecases.CreateDocumentCommand {
	return usecases.CreateDocumentCommand{
		Title:      r.Title,
		Content:    r.Content,
		Category:   r.Category,
		FaultCode:  r.FaultCode,
		RobotModel: r.RobotModel,
		Tags:       r.Tags,
		Principal:  p,
	}
}

// UpdateDocumentRequest leaves absent fields unchanged. A non-null tags array
// replaces the tag set.
type UpdateDocumentRequest struct {
	Title      *string  `json:"title" binding:"omitempty,min=1,max=200"`
	Content    *string  `json:"content"`
	Category   *string  `json:"category" binding:"omitempty,max=50"`
	FaultCode  *string  `json:"fault_code" binding:"omitempty,max=50"`
	RobotModel *string  `json:"robot_model" binding:"omitempty,max=100"`
	Tags       []string `json:"tags" binding:"omitempty,max=20,dive,max=50"`
}

func (r *UpdateDocumentRequest) ToCommand(documentID uint, p *authorization.Principal) usecases.UpdateDocumentCommand {
	return usecases.UpdateDocumentCommand{
		DocumentID: documentID,
		Title:      r.Title,
		Content:    r.Content,
		Category:   r.Category,
		FaultCode:  r.FaultCode,
		RobotModel: r.RobotModel,
		Tags:       r.Tags,
		Principal:  p,
	}
}

type AddAttachmentRequest struct {
	FileID string `json:"file_id" binding:"required"`
}
