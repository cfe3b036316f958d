package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/file"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/mappers"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	apperrors "github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, f *file.File) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.FileToModel(f)).Error; err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	return nil
}

func (r *FileRepository) GetByID(ctx context.Context, id string) (*file.File, error) {
	var model models.FileModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("file not found", id)
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return mappers.FileToDomain(&model), nil
}
