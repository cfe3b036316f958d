package library

import (
	"fmt"
	"strings"
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
)

const maxTags = 20

// Document is a fault-resolution article published by a service provider and
// readable by its contracted customers. ContentHTML is the sanitized render of
// the markdown Content.
type Document struct {
	id          uint
	orgID       uint
	title       string
	content     string
	contentHTML string
	category    string
	faultCode   string
	robotModel  string
	tags        []string
	createdBy   uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewDocument(orgID uint, title, content, category, faultCode, robotModel string, tags []string, createdBy uint) (*Document, error) {
	if orgID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	normalized, err := normalizeTags(tags)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Document{
		orgID:      orgID,
		title:      title,
		content:    content,
		category:   category,
		faultCode:  strings.TrimSpace(faultCode),
		robotModel: robotModel,
		tags:       normalized,
		createdBy:  createdBy,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructDocument(
	id, orgID uint,
	title, content, contentHTML, category, faultCode, robotModel string,
	tags []string,
	createdBy uint,
	createdAt, updatedAt time.Time,
) (*Document, error) {
	if id == 0 {
		return nil, fmt.Errorf("document ID cannot be zero")
	}
	return &Document{
		id:          id,
		orgID:       orgID,
		title:       title,
		content:     content,
		contentHTML: contentHTML,
		category:    category,
		faultCode:   faultCode,
		robotModel:  robotModel,
		tags:        append([]string{}, tags...),
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title cannot exceed 200 characters")
	}
	return nil
}

func normalizeTags(tags []string) ([]string, error) {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	if len(out) > maxTags {
		return nil, fmt.Errorf("a document can carry at most %d tags", maxTags)
	}
	return out, nil
}

func (d *Document) ID() uint             { return d.id }
func (d *Document) OrgID() uint          { return d.orgID }
func (d *Document) Title() string        { return d.title }
func (d *Document) Content() string      { return d.content }
func (d *Document) ContentHTML() string  { return d.contentHTML }
func (d *Document) Category() string     { return d.category }
func (d *Document) FaultCode() string    { return d.faultCode }
func (d *Document) RobotModel() string   { return d.robotModel }
func (d *Document) Tags() []string       { return append([]string{}, d.tags...) }
func (d *Document) CreatedBy() uint      { return d.createdBy }
func (d *Document) CreatedAt() time.Time { return d.createdAt }
func (d *Document) UpdatedAt() time.Time { return d.updatedAt }

func (d *Document) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("document ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("document ID cannot be zero")
	}
	d.id = id
	return nil
}

// SetRenderedContent stores the sanitized HTML of the current content.
func (d *Document) SetRenderedContent(html string) {
	d.contentHTML = html
}

// Update overwrites the non-nil fields. The caller re-renders when content changes.
func (d *Document) Update(title, content, category, faultCode, robotModel *string, tags []string) error {
	if title != nil {
		t := strings.TrimSpace(*title)
		if err := validateTitle(t); err != nil {
			return err
		}
		d.title = t
	}
	if content != nil {
		d.content = *content
	}
	if category != nil {
		d.category = *category
	}
	if faultCode != nil {
		d.faultCode = strings.TrimSpace(*faultCode)
	}
	if robotModel != nil {
		d.robotModel = *robotModel
	}
	if tags != nil {
		normalized, err := normalizeTags(tags)
		if err != nil {
			return err
		}
		d.tags = normalized
	}
	d.updatedAt = biztime.NowUTC()
	return nil
}

// Attachment is a stored file linked to a document.
type Attachment struct {
	ID          uint
	DocumentID  uint
	FileID      string
	FileName    string
	ContentType string
	Size        int64
	CreatedAt   time.Time
}
