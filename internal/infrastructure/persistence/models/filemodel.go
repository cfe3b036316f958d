package models

import (
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/constants"
)

type FileModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"size:255;not null"`
	ContentType string `gorm:"size:100;not null"`
	Size        int64  `gorm:"not null"`
	UploadedBy  uint   `gorm:"not null;index"`
	CreatedAt   time.Time
}

func (FileModel) TableName() string {
	return constants.TableFiles
}
