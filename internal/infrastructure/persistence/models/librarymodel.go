package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/constants"
)

type LibraryDocumentModel struct {
	ID          uint   `gorm:"primaryKey"`
	OrgID       uint   `gorm:"not null;index"`
	Title       string `gorm:"size:200;not null"`
	Content     string `gorm:"type:text"`
	ContentHTML string `gorm:"column:content_html;type:text"`
	Category    string `gorm:"size:50;index"`
	FaultCode   string `gorm:"size:50;index"`
	RobotModel  string `gorm:"size:100"`
	Tags        datatypes.JSON
	CreatedBy   uint `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (LibraryDocumentModel) TableName() string {
	return constants.TableLibraryDocuments
}

type LibraryAttachmentModel struct {
	ID          uint   `gorm:"primaryKey"`
	DocumentID  uint   `gorm:"not null;index"`
	FileID      string `gorm:"size:36;not null"`
	FileName    string `gorm:"size:255;not null"`
	ContentType string `gorm:"size:100"`
	Size        int64
	CreatedAt   time.Time
}

func (LibraryAttachmentModel) TableName() string {
	return constants.TableLibraryAttachments
}
