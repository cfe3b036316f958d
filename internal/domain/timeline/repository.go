package timeline

import (
	"context"
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

type Repository interface {
	Append(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id uint) (*Event, error)
	// List returns events newest first.
	List(ctx context.Context, filter Filter) ([]*Event, int64, error)
	Delete(ctx context.Context, id uint) error
}

type Filter struct {
	query.PageFilter
	RobotID    *uint
	TicketID   *uint
	EventTypes []EventType
	From       *time.Time
	To         *time.Time
}
