package ticket

import (
	"fmt"
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/biztime"
)

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is the customer's score for a resolved ticket, one per ticket.
type Rating struct {
	id        uint
	ticketID  uint
	score     int
	comment   string
	ratedBy   uint
	orgID     uint
	createdAt time.Time
}

func NewRating(ticketID uint, score int, comment string, ratedBy, orgID uint) (*Rating, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if score < MinRatingScore || score > MaxRatingScore {
		return nil, fmt.Errorf("rating must be between %d and %d", MinRatingScore, MaxRatingScore)
	}
	if ratedBy == 0 {
		return nil, fmt.Errorf("rater ID is required")
	}

	return &Rating{
		ticketID:  ticketID,
		score:     score,
		comment:   comment,
		ratedBy:   ratedBy,
		orgID:     orgID,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructRating(id, ticketID uint, score int, comment string, ratedBy, orgID uint, createdAt time.Time) *Rating {
	return &Rating{
		id:        id,
		ticketID:  ticketID,
		score:     score,
		comment:   comment,
		ratedBy:   ratedBy,
		orgID:     orgID,
		createdAt: createdAt,
	}
}

func (r *Rating) ID() uint             { return r.id }
func (r *Rating) TicketID() uint       { return r.ticketID }
func (r *Rating) Score() int           { return r.score }
func (r *Rating) Comment() string      { return r.comment }
func (r *Rating) RatedBy() uint        { return r.ratedBy }
func (r *Rating) OrgID() uint          { return r.orgID }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }

func (r *Rating) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("rating ID is already set")
	}
	r.id = id
	return nil
}
