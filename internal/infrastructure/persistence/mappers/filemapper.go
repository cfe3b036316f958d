package mappers

import (
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/file"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
)

func FileToModel(f *file.File) *models.FileModel {
	return &models.FileModel{
		ID:          f.ID,
		Name:        f.Name,
		ContentType: f.ContentType,
		Size:        f.Size,
		UploadedBy:  f.UploadedBy,
		CreatedAt:   f.CreatedAt,
	}
}

func FileToDomain(model *models.FileModel) *file.File {
	return &file.File{
		ID:          model.ID,
		Name:        model.Name,
		ContentType: model.ContentType,
		Size:        model.Size,
		UploadedBy:  model.UploadedBy,
		CreatedAt:   model.CreatedAt,
	}
}
