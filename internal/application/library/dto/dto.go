package dto

import (
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/library"
)

type DocumentDTO struct {
	ID          uint            `json:"id"`
	OrgID       uint            `json:"org_id"`
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	ContentHTML string          `json:"content_html"`
	Category    string          `json:"category,omitempty"`
	FaultCode   string          `json:"fault_code,omitempty"`
	RobotModel  string          `json:"robot_model,omitempty"`
	Tags        []string        `json:"tags"`
	CreatedBy   uint            `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Attachments []AttachmentDTO `json:"attachments,omitempty"`
}

// DocumentListItemDTO omits the bodies.
type DocumentListItemDTO struct {
	ID         uint      `json:"id"`
	OrgID      uint      `json:"org_id"`
	Title      string    `json:"title"`
	Category   string    `json:"category,omitempty"`
	FaultCode  string    `json:"fault_code,omitempty"`
	RobotModel string    `json:"robot_model,omitempty"`
	Tags       []string  `json:"tags"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AttachmentDTO struct {
	ID          uint      `json:"id"`
	FileID      string    `json:"file_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToDocumentDTO(d *library.Document) DocumentDTO {
	return DocumentDTO{
		ID:          d.ID(),
		OrgID:       d.OrgID(),
		Title:       d.Title(),
		Content:     d.Content(),
		ContentHTML: d.ContentHTML(),
		Category:    d.Category(),
		FaultCode:   d.FaultCode(),
		RobotModel:  d.RobotModel(),
		Tags:        d.Tags(),
		CreatedBy:   d.CreatedBy(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
}

func ToDocumentListItemDTO(d *library.Document) DocumentListItemDTO {
	return DocumentListItemDTO{
		ID:         d.ID(),
		OrgID:      d.OrgID(),
		Title:      d.Title(),
		Category:   d.Category(),
		FaultCode:  d.FaultCode(),
		RobotModel: d.RobotModel(),
		Tags:       d.Tags(),
		UpdatedAt:  d.UpdatedAt(),
	}
}

func ToAttachmentDTO(a *library.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:          a.ID,
		FileID:      a.FileID,
		FileName:    a.FileName,
		ContentType: a.ContentType,
		Size:        a.Size,
		CreatedAt:   a.CreatedAt,
	}
}
