package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from TicketStatus
		to   TicketStatus
		want bool
	}{
		{StatusOpen, StatusInProgress, true},
		{StatusOpen, StatusPending, true},
		{StatusOpen, StatusResolved, false},
		{StatusInProgress, StatusResolved, true},
		{StatusPending, StatusResolved, true},
		{StatusPending, StatusInProgress, true},
		{StatusResolved, StatusOpen, true},
		{StatusResolved, StatusResolved, false},
		{StatusResolved, StatusPending, false},
		{StatusClosed, StatusOpen, true},
		{StatusClosed, StatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTicketStatus_Next(t *testing.T) {
	next := StatusResolved.Next()
	assert.ElementsMatch(t, []TicketStatus{StatusClosed, StatusOpen}, next)

	next[0] = StatusPending
	assert.False(t, StatusResolved.CanTransitionTo(StatusPending))

	assert.Empty(t, TicketStatus("archived").Next())
	assert.True(t, StatusClosed.IsFinished())
	assert.False(t, StatusPending.IsFinished())
}

func TestNewPriority(t *testing.T) {
	p, err := NewPriority("")
	assert.NoError(t, err)
	assert.Equal(t, PriorityMedium, p)

	p, err = NewPriority("urgent")
	assert.NoError(t, err)
	assert.Equal(t, PriorityUrgent, p)

	_, err = NewPriority("critical")
	assert.Error(t, err)
}

func TestStageType(t *testing.T) {
	types := StageTypes()
	assert.Len(t, types, 6)
	assert.Equal(t, StageAbnormalDescription, types[0])
	assert.Equal(t, StageCustomerConfirmation, types[5])

	for _, st := range types {
		assert.True(t, st.IsValid())
	}

	_, err := NewStageType("diagnosis")
	assert.Error(t, err)

	assert.Equal(t, "On Site Solution", StageOnSiteSolution.Title())
	assert.Equal(t, "Summary", StageSummary.Title())
}
