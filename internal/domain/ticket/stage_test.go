package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
)

func TestNewStage_Status(t *testing.T) {
	empty, err := NewStage(1, vo.StageAbnormalAnalysis, "", nil, nil, 9)
	require.NoError(t, err)
	assert.Equal(t, vo.StageNotStarted, empty.Status())

	filled, err := NewStage(1, vo.StageAbnormalAnalysis, "bearing worn", []string{"f1"}, nil, 9)
	require.NoError(t, err)
	assert.Equal(t, vo.StageInProgress, filled.Status())
	assert.Equal(t, []string{"f1"}, filled.Attachments())

	_, err = NewStage(1, "diagnosis", "", nil, nil, 9)
	assert.Error(t, err)
}

func TestStage_Apply(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty content keeps status", func(t *testing.T) {
		s, _ := NewStage(1, vo.StageRequiredParts, "", nil, nil, 9)
		s.Apply("", []string{"a"}, &due, 10)
		assert.Equal(t, vo.StageNotStarted, s.Status())
		assert.Equal(t, &due, s.ExpectedDate())
		assert.Equal(t, uint(10), s.UpdatedBy())
	})

	t.Run("content moves to in progress", func(t *testing.T) {
		s, _ := NewStage(1, vo.StageRequiredParts, "", nil, nil, 9)
		s.Apply("two bearings", nil, nil, 10)
		assert.Equal(t, vo.StageInProgress, s.Status())
		assert.Equal(t, "two bearings", s.Content())
	})

	t.Run("completed stage edited with content reverts to in progress", func(t *testing.T) {
		s, _ := NewStage(1, vo.StageSummary, "done", nil, nil, 9)
		s.Complete(due, 9)
		require.Equal(t, vo.StageCompleted, s.Status())

		s.Apply("amended", nil, nil, 9)
		assert.Equal(t, vo.StageInProgress, s.Status())
		assert.Nil(t, s.CompletedAt())
	})

	t.Run("completed stage edited without content stays completed", func(t *testing.T) {
		s, _ := NewStage(1, vo.StageSummary, "done", nil, nil, 9)
		s.Complete(due, 9)
		s.Apply("", nil, nil, 9)
		assert.Equal(t, vo.StageCompleted, s.Status())
	})

	t.Run("attachments are copied", func(t *testing.T) {
		in := []string{"x"}
		s, _ := NewStage(1, vo.StageSummary, "", nil, nil, 9)
		s.Apply("", in, nil, 9)
		in[0] = "mutated"
		assert.Equal(t, []string{"x"}, s.Attachments())
	})
}

func TestIntervalFromStage(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	done := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)

	s, _ := NewStage(3, vo.StageOnSiteSolution, "replace", nil, &due, 9)
	iv := IntervalFromStage(s)
	assert.Equal(t, uint(3), iv.TicketID)
	assert.Equal(t, s.CreatedAt(), iv.StartDate)
	assert.Equal(t, &due, iv.EndDate)
	assert.Equal(t, vo.StageInProgress, iv.Status)
	assert.True(t, iv.Matches(s))

	s.Complete(done, 9)
	assert.False(t, iv.Matches(s), "completion makes the old mirror stale")

	fresh := IntervalFromStage(s)
	assert.Equal(t, done, *fresh.EndDate)
	assert.Equal(t, vo.StageCompleted, fresh.Status)
}
