package ticket

import (
	"context"

	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	// Delete removes the ticket together with its stages, intervals, comments and rating.
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	// MaxNumber returns the highest allocated ticket number, or "" when none exist.
	MaxNumber(ctx context.Context) (string, error)
}

// TicketFilter scopes a ticket listing. CustomerID and ServiceProviderID are
// OR-ed when both are set so a caller sees tickets on either side of its org.
// A non-empty CustomerIDs further restricts the result to those customers.
type TicketFilter struct {
	query.BaseFilter
	CustomerID        *uint
	ServiceProviderID *uint
	CustomerIDs       []uint
	AssignedTo        *uint
	RobotID           *uint
	Status            *vo.TicketStatus
	Priority          *vo.Priority
}

type StageRepository interface {
	Get(ctx context.Context, ticketID uint, stageType vo.StageType) (*Stage, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*Stage, error)
	// Upsert inserts or updates the row keyed by (ticket, stage type) and sets the ID on insert.
	Upsert(ctx context.Context, stage *Stage) error
}

type IntervalRepository interface {
	ListByTicket(ctx context.Context, ticketID uint) ([]*TimelineInterval, error)
	Upsert(ctx context.Context, interval *TimelineInterval) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*Comment, error)
	Delete(ctx context.Context, commentID uint) error
}

type RatingRepository interface {
	Create(ctx context.Context, rating *Rating) error
	GetByTicket(ctx context.Context, ticketID uint) (*Rating, error)
}
