package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
)

var _ ticket.NumberGenerator = (*TicketNumberGenerator)(nil)

type maxNumberSource interface {
	MaxNumber(ctx context.Context) (string, error)
}

// TicketNumberGenerator hands out RB-prefixed sequence numbers. The highest
// number issued by this process is remembered so concurrent creates that have
// not committed yet still receive distinct numbers.
type TicketNumberGenerator struct {
	source maxNumberSource
	mu     sync.Mutex
	last   int
}

func NewTicketNumberGenerator(source maxNumberSource) *TicketNumberGenerator {
	return &TicketNumberGenerator{source: source}
}

func (g *TicketNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	stored, err := g.source.MaxNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get max ticket number: %w", err)
	}

	seq := 0
	if stored != "" {
		seq, err = ticket.ParseNumber(stored)
		if err != nil {
			return "", err
		}
	}
	if g.last > seq {
		seq = g.last
	}
	seq++
	g.last = seq

	return ticket.FormatNumber(seq), nil
}
