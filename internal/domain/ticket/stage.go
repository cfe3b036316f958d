package ticket

import (
	"fmt"
	"time"

	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
)

// Stage is one step of a ticket's resolution workflow, unique per
// (ticket, stage type).
type Stage struct {
	id           uint
	ticketID     uint
	stageType    vo.StageType
	content      string
	attachments  []string
	expectedDate *time.Time
	status       vo.StageStatus
	completedAt  *time.Time
	updatedBy    uint
	createdAt    time.Time
	updatedAt    time.Time
}

// NewStage creates a stage. It starts in progress when content is given,
// otherwise not started.
func NewStage(
	ticketID uint,
	stageType vo.StageType,
	content string,
	attachments []string,
	expectedDate *time.Time,
	updatedBy uint,
) (*Stage, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !stageType.IsValid() {
		return nil, fmt.Errorf("invalid stage type: %s", stageType)
	}

	status := vo.StageNotStarted
	if content != "" {
		status = vo.StageInProgress
	}

	now := biztime.NowUTC()
	return &Stage{
		ticketID:     ticketID,
		stageType:    stageType,
		content:      content,
		attachments:  copyStrings(attachments),
		expectedDate: expectedDate,
		status:       status,
		updatedBy:    updatedBy,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructStage(
	id uint,
	ticketID uint,
	stageType vo.StageType,
	content string,
	attachments []string,
	expectedDate *time.Time,
	status vo.StageStatus,
	completedAt *time.Time,
	updatedBy uint,
	createdAt, updatedAt time.Time,
) (*Stage, error) {
	if id == 0 {
		return nil, fmt.Errorf("stage ID cannot be zero")
	}
	if !stageType.IsValid() {
		return nil, fmt.Errorf("invalid stage type: %s", stageType)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid stage status: %s", status)
	}

	return &Stage{
		id:           id,
		ticketID:     ticketID,
		stageType:    stageType,
		content:      content,
		attachments:  copyStrings(attachments),
		expectedDate: expectedDate,
		status:       status,
		completedAt:  completedAt,
		updatedBy:    updatedBy,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (s *Stage) ID() uint                 { return s.id }
func (s *Stage) TicketID() uint           { return s.ticketID }
func (s *Stage) StageType() vo.StageType  { return s.stageType }
func (s *Stage) Content() string          { return s.content }
func (s *Stage) Attachments() []string    { return copyStrings(s.attachments) }
func (s *Stage) ExpectedDate() *time.Time { return s.expectedDate }
func (s *Stage) Status() vo.StageStatus   { return s.status }
func (s *Stage) CompletedAt() *time.Time  { return s.completedAt }
func (s *Stage) UpdatedBy() uint          { return s.updatedBy }
func (s *Stage) CreatedAt() time.Time     { return s.createdAt }
func (s *Stage) UpdatedAt() time.Time     { return s.updatedAt }

func (s *Stage) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("stage ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("stage ID cannot be zero")
	}
	s.id = id
	return nil
}

// Apply overwrites the editable fields. Non-empty content puts the stage in
// progress, including a stage that was already completed; empty content keeps
// the current status.
func (s *Stage) Apply(content string, attachments []string, expectedDate *time.Time, updatedBy uint) {
	s.content = content
	s.attachments = copyStrings(attachments)
	s.expectedDate = expectedDate
	if content != "" {
		s.status = vo.StageInProgress
		s.completedAt = nil
	}
	s.updatedBy = updatedBy
	s.updatedAt = biztime.NowUTC()
}

// Complete marks the stage completed at completedAt.
func (s *Stage) Complete(completedAt time.Time, updatedBy uint) {
	at := completedAt.UTC()
	s.status = vo.StageCompleted
	s.completedAt = &at
	s.updatedBy = updatedBy
	s.updatedAt = biztime.NowUTC()
}

// SetContentIfEmpty fills content without touching status.
func (s *Stage) SetContentIfEmpty(content string) {
	if s.content == "" {
		s.content = content
	}
}

// MirrorEnd is the end of the stage's timeline interval: the completion time of a
// completed stage, otherwise its expected date.
func (s *Stage) MirrorEnd() *time.Time {
	if s.status.IsCompleted() && s.completedAt != nil {
		return s.completedAt
	}
	return s.expectedDate
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
