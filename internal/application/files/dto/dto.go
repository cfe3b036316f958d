package dto

import (
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/file"
)

type FileDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  uint      `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToFileDTO(f *file.File) *FileDTO {
	return &FileDTO{
		ID:          f.ID,
		Name:        f.Name,
		ContentType: f.ContentType,
		Size:        f.Size,
		UploadedBy:  f.UploadedBy,
		CreatedAt:   f.CreatedAt,
	}
}
