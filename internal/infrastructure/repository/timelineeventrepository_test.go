package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/query"
)

func TestTimelineEventRepository_ListFiltersNewestFirst(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	repo := NewTimelineEventRepository(gdb)

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	specs := []struct {
		eventType timeline.EventType
		ticketID  *uint
		at        time.Time
	}{
		{timeline.EventRobotCreated, nil, base},
		{timeline.EventTicketCreated, uintPtr(4), base.Add(time.Hour)},
		{timeline.EventStageUpdated, uintPtr(4), base.Add(2 * time.Hour)},
	}
	for _, s := range specs {
		e := timeline.ReconstructEvent(0, 7, s.ticketID, nil, s.eventType, "t", "", map[string]interface{}{"k": "v"}, 1, s.at)
		require.NoError(t, repo.Append(ctx, e))
	}

	robotID := uint(7)
	events, total, err := repo.List(ctx, timeline.Filter{RobotID: &robotID, PageFilter: query.PageFilter{Page: 1, PageSize: 10}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, events, 3)
	assert.Equal(t, timeline.EventStageUpdated, events[0].Type())
	assert.Equal(t, "v", events[0].Metadata()["k"])

	from := base.Add(30 * time.Minute)
	_, total, err = repo.List(ctx, timeline.Filter{RobotID: &robotID, From: &from})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	events, _, err = repo.List(ctx, timeline.Filter{EventTypes: []timeline.EventType{timeline.EventTicketCreated}})
	require.NoError(t, err)
	require.Len(t, events, 1)

	require.NoError(t, repo.Delete(ctx, events[0].ID()))
	_, err = repo.GetByID(ctx, events[0].ID())
	assert.True(t, errors.IsNotFoundError(err))
}
