package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/library"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/mappers"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	apperrors "github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

var allowedDocumentOrderByFields = map[string]string{
	"id":         "id",
	"title":      "title",
	"category":   "category",
	"fault_code": "fault_code",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type LibraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) *LibraryRepository {
	return &LibraryRepository{db: db}
}

func (r *LibraryRepository) Create(ctx context.Context, doc *library.Document) error {
	model := mappers.DocumentToModel(doc)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return doc.SetID(model.ID)
}

func (r *LibraryRepository) Update(ctx context.Context, doc *library.Document) error {
	model := mappers.DocumentToModel(doc)
	if err := updateAll(db.GetTxFromContext(ctx, r.db), &models.LibraryDocumentModel{}, model.ID, model).Error; err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	return nil
}

func (r *LibraryRepository) GetByID(ctx context.Context, id uint) (*library.Document, error) {
	var model models.LibraryDocumentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("document not found", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return mappers.DocumentToDomain(&model)
}

func (r *LibraryRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).Delete(&models.LibraryAttachmentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete document attachments: %w", err)
		}
		result := tx.Delete(&models.LibraryDocumentModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete document: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("document not found", fmt.Sprintf("%d", id))
		}
		return nil
	})
}

// List matches Keyword against title, content and fault code. An empty
// OrgIDs yields nothing.
func (r *LibraryRepository) List(ctx context.Context, filter library.ListFilter) ([]*library.Document, int64, error) {
	if len(filter.OrgIDs) == 0 {
		return []*library.Document{}, 0, nil
	}

	q := db.GetTxFromContext(ctx, r.db).Model(&models.LibraryDocumentModel{}).Where("org_id IN ?", filter.OrgIDs)
	if filter.Keyword != "" {
		pattern := likePattern(filter.Keyword)
		q = q.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(fault_code) LIKE ?", pattern, pattern, pattern)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.FaultCode != "" {
		q = q.Where("fault_code = ?", filter.FaultCode)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	var list []*models.LibraryDocumentModel
	err := q.Order(filter.OrderClause(allowedDocumentOrderByFields, "updated_at DESC")).
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := make([]*library.Document, 0, len(list))
	for _, m := range list {
		d, err := mappers.DocumentToDomain(m)
		if err != nil {
			return nil, 0, err
		}
		docs = append(docs, d)
	}
	return docs, total, nil
}

func (r *LibraryRepository) AddAttachment(ctx context.Context, att *library.Attachment) error {
	model := mappers.AttachmentToModel(att)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to add attachment: %w", err)
	}
	att.ID = model.ID
	return nil
}

func (r *LibraryRepository) ListAttachments(ctx context.Context, documentID uint) ([]*library.Attachment, error) {
	var list []*models.LibraryAttachmentModel
	if err := db.GetTxFromContext(ctx, r.db).Where("document_id = ?", documentID).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	atts := make([]*library.Attachment, len(list))
	for i, m := range list {
		atts[i] = mappers.AttachmentToDomain(m)
	}
	return atts, nil
}
