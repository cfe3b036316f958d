package mappers

import (
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/library"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
)

func DocumentToModel(d *library.Document) *models.LibraryDocumentModel {
	return &models.LibraryDocumentModel{
		ID:          d.ID(),
		OrgID:       d.OrgID(),
		Title:       d.Title(),
		Content:     d.Content(),
		ContentHTML: d.ContentHTML(),
		Category:    d.Category(),
		FaultCode:   d.FaultCode(),
		RobotModel:  d.RobotModel(),
		Tags:        marshalStrings(d.Tags()),
		CreatedBy:   d.CreatedBy(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
}

func DocumentToDomain(model *models.LibraryDocumentModel) (*library.Document, error) {
	tags, err := unmarshalStrings(model.Tags)
	if err != nil {
		return nil, err
	}
	return library.ReconstructDocument(
		model.ID,
		model.OrgID,
		model.Title,
		model.Content,
		model.ContentHTML,
		model.Category,
		model.FaultCode,
		model.RobotModel,
		tags,
		model.CreatedBy,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func AttachmentToModel(a *library.Attachment) *models.LibraryAttachmentModel {
	return &models.LibraryAttachmentModel{
		ID:          a.ID,
		DocumentID:  a.DocumentID,
		FileID:      a.FileID,
		FileName:    a.FileName,
		ContentType: a.ContentType,
		Size:        a.Size,
		CreatedAt:   a.CreatedAt,
	}
}

func AttachmentToDomain(model *models.LibraryAttachmentModel) *library.Attachment {
	return &library.Attachment{
		ID:          model.ID,
		DocumentID:  model.DocumentID,
		FileID:      model.FileID,
		FileName:    model.FileName,
		ContentType: model.ContentType,
		Size:        model.Size,
		CreatedAt:   model.CreatedAt,
	}
}
