package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/file"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/library"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

type memDocumentRepository struct {
	docs        map[uint]*library.Document
	attachments []*library.Attachment
	nextID      uint
	lastFilter  library.ListFilter
}

func newMemDocumentRepository() *memDocumentRepository {
	return &memDocumentRepository{docs: map[uint]*library.Document{}, nextID: 1}
}

func (m *memDocumentRepository) Create(ctx context.Context, doc *library.Document) error {
	if err := doc.SetID(m.nextID); err != nil {
		return err
	}
	m.docs[m.nextID] = doc
	m.nextID++
	return nil
}

func (m *memDocumentRepository) Update(ctx context.Context, doc *library.Document) error {
	m.docs[doc.ID()] = doc
	return nil
}

func (m *memDocumentRepository) GetByID(ctx context.Context, id uint) (*library.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, errors.NewNotFoundError("library document not found")
	}
	return doc, nil
}

func (m *memDocumentRepository) Delete(ctx context.Context, id uint) error {
	delete(m.docs, id)
	return nil
}

func (m *memDocumentRepository) List(ctx context.Context, filter library.ListFilter) ([]*library.Document, int64, error) {
	m.lastFilter = filter
	var out []*library.Document
	for _, doc := range m.docs {
		for _, orgID := range filter.OrgIDs {
			if doc.OrgID() == orgID {
				out = append(out, doc)
			}
		}
	}
	return out, int64(len(out)), nil
}

func (m *memDocumentRepository) AddAttachment(ctx context.Context, att *library.Attachment) error {
	att.ID = uint(len(m.attachments) + 1)
	m.attachments = append(m.attachments, att)
	return nil
}

func (m *memDocumentRepository) ListAttachments(ctx context.Context, documentID uint) ([]*library.Attachment, error) {
	var out []*library.Attachment
	for _, att := range m.attachments {
		if att.DocumentID == documentID {
			out = append(out, att)
		}
	}
	return out, nil
}

type mockFileRepository struct {
	files map[string]*file.File
}

func (m *mockFileRepository) Create(ctx context.Context, f *file.File) error {
	m.files[f.ID] = f
	return nil
}

func (m *mockFileRepository) GetByID(ctx context.Context, id string) (*file.File, error) {
	f, ok := m.files[id]
	if !ok {
		return nil, errors.NewNotFoundError("file not found")
	}
	return f, nil
}

// stubRenderer wraps the markdown in a paragraph, or fails when it contains "!fail".
type stubRenderer struct {
	calls int
}

func (s *stubRenderer) Render(markdown string) (string, error) {
	s.calls++
	if strings.Contains(markdown, "!fail") {
		return "", fmt.Errorf("render failed")
	}
	return "<p>" + markdown + "</p>", nil
}

type staticLinkSource map[uint][]uint

func (s staticLinkSource) ActivePartnerIDs(ctx context.Context, orgID uint) ([]uint, error) {
	return s[orgID], nil
}
