package ticket

import (
	"time"

	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
)

// TimelineInterval mirrors a stage onto the ticket's Gantt-style timeline.
// It is keyed by (ticket, stage type) and rewritten on every stage write.
type TimelineInterval struct {
	ID        uint
	TicketID  uint
	StageType vo.StageType
	StartDate time.Time
	EndDate   *time.Time
	Status    vo.StageStatus
	UpdatedAt time.Time
}

// IntervalFromStage builds the mirror the stage should currently have.
func IntervalFromStage(s *Stage) *TimelineInterval {
	return &TimelineInterval{
		TicketID:  s.TicketID(),
		StageType: s.StageType(),
		StartDate: s.CreatedAt(),
		EndDate:   s.MirrorEnd(),
		Status:    s.Status(),
	}
}

// Matches reports whether the interval agrees with the stage it mirrors.
func (i *TimelineInterval) Matches(s *Stage) bool {
	want := IntervalFromStage(s)
	if i.Status != want.Status || i.StartDate.UnixMilli() != want.StartDate.UnixMilli() {
		return false
	}
	if (i.EndDate == nil) != (want.EndDate == nil) {
		return false
	}
	return i.EndDate == nil || i.EndDate.UnixMilli() == want.EndDate.UnixMilli()
}
