package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/notification"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

func TestUpsertStageUseCase_Idempotent(t *testing.T) {
	w := newWorld(t)
	id := w.newTicket(t)
	expected := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	cmd := UpsertStageCommand{
		TicketID:     id,
		StageType:    "abnormal_analysis",
		Content:      "Encoder worn",
		Attachments:  []string{"f-1"},
		ExpectedDate: &expected,
		Principal:    w.serviceEngineer,
	}
	first, err := w.upsertStage().Execute(testCtx, cmd)
	require.NoError(t, err)
	second, err := w.upsertStage().Execute(testCtx, cmd)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, w.stages.stages, 1)
	assert.Len(t, w.intervals.intervals, 1)
	assert.Equal(t, "in_progress", second.Status)
	assert.Equal(t, "Encoder worn", second.Content)
	assert.Equal(t, []string{"f-1"}, second.Attachments)

	interval := w.intervals.intervals[stageKey{id, vo.StageAbnormalAnalysis}]
	require.NotNil(t, interval.EndDate)
	assert.True(t, interval.EndDate.Equal(expected))
	assert.Equal(t, vo.StageInProgress, interval.Status)
}

func TestUpsertStageUseCase_Validation(t *testing.T) {
	w := newWorld(t)
	id := w.newTicket(t)

	_, err := w.upsertStage().Execute(testCtx, UpsertStageCommand{TicketID: id, StageType: "diagnosis", Principal: w.serviceEngineer})
	assert.True(t, errors.IsValidationError(err))

	_, err = w.upsertStage().Execute(testCtx, UpsertStageCommand{TicketID: 404, StageType: "summary", Principal: w.serviceEngineer})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = w.upsertStage().Execute(testCtx, UpsertStageCommand{TicketID: id, StageType: "summary", Principal: w.strangerAdmin})
	assert.True(t, errors.IsForbiddenError(err))

	empty, err := w.upsertStage().Execute(testCtx, UpsertStageCommand{TicketID: id, StageType: "required_parts", Principal: w.endEngineer})
	require.NoError(t, err)
	assert.Equal(t, "not_started", empty.Status)
}

func TestListStagesUseCase_SlotsAndRepair(t *testing.T) {
	w := newWorld(t)
	id := w.newTicket(t)

	_, err := w.upsertStage().Execute(testCtx, UpsertStageCommand{TicketID: id, StageType: "on_site_solution", Content: "Replaced belt", Principal: w.serviceEngineer})
	require.NoError(t, err)

	key := stageKey{id, vo.StageOnSiteSolution}
	w.intervals.intervals[key].Status = vo.StageNotStarted
	before := w.intervals.upserts

	stages, err := w.listStages().Execute(testCtx, ListStagesQuery{TicketID: id, Principal: w.endAdmin})
	require.NoError(t, err)

	require.Len(t, stages, 6)
	for i, st := range vo.StageTypes() {
		assert.Equal(t, st.String(), stages[i].StageType)
	}
	assert.Equal(t, "in_progress", stages[3].Status)
	assert.Equal(t, "not_started", stages[0].Status)

	assert.Equal(t, before+1, w.intervals.upserts)
	assert.Equal(t, vo.StageInProgress, w.intervals.intervals[key].Status)
}

func TestCompleteSummaryUseCase_Execute(t *testing.T) {
	w := newWorld(t)
	id := w.newTicket(t)

	_, err := w.completeSummary().Execute(testCtx, CompleteSummaryCommand{TicketID: id, Principal: w.endAdmin})
	assert.True(t, errors.IsForbiddenError(err))

	at := time.Date(2026, 4, 2, 15, 0, 0, 0, time.UTC)
	stage, err := w.completeSummary().Execute(testCtx, CompleteSummaryCommand{
		TicketID: id, CompletedAt: &at, Content: "Belt replaced", Principal: w.serviceEngineer,
	})
	require.NoError(t, err)

	assert.Equal(t, "completed", stage.Status)
	assert.Equal(t, "Belt replaced", stage.Content)

	tk, _ := w.tickets.GetByID(testCtx, id)
	assert.Equal(t, vo.StatusPending, tk.Status())

	interval := w.intervals.intervals[stageKey{id, vo.StageSummary}]
	require.NotNil(t, interval.EndDate)
	assert.True(t, interval.EndDate.Equal(at))

	require.Len(t, w.notifier.sent, 1)
	sent := w.notifier.sent[0]
	assert.Equal(t, notification.TypeSummaryCompleted, sent.Type)
	require.Len(t, sent.Recipients, 1)
	assert.Equal(t, uint(3), sent.Recipients[0].UserID)
}

func TestConfirmByCustomerUseCase_EndToEnd(t *testing.T) {
	w := newWorld(t)
	id := w.newTicket(t)

	_, err := w.assign().Execute(testCtx, AssignTicketCommand{TicketID: id, AssigneeID: 2, Principal: w.serviceAdmin})
	require.NoError(t, err)
	_, err = w.completeSummary().Execute(testCtx, CompleteSummaryCommand{TicketID: id, Principal: w.serviceEngineer})
	require.NoError(t, err)
	w.notifier.sent = nil

	_, err = w.confirm().Execute(testCtx, ConfirmByCustomerCommand{TicketID: id, Rating: 6, Principal: w.endAdmin})
	assert.True(t, errors.IsValidationError(err))

	_, err = w.confirm().Execute(testCtx, ConfirmByCustomerCommand{TicketID: id, Rating: 5, Principal: w.serviceAdmin})
	assert.True(t, errors.IsForbiddenError(err))

	result, err := w.confirm().Execute(testCtx, ConfirmByCustomerCommand{
		TicketID: id, Rating: 4, Comment: "Works again", Principal: w.endAdmin,
	})
	require.NoError(t, err)

	assert.Equal(t, "resolved", result.Status)
	assert.NotNil(t, result.ResolvedAt)
	assert.Equal(t, "Works again", result.ResolutionNotes)

	rating, err := w.ratings.GetByTicket(testCtx, id)
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Score())

	stage := w.stages.stages[stageKey{id, vo.StageCustomerConfirmation}]
	require.NotNil(t, stage)
	assert.Equal(t, vo.StageCompleted, stage.Status())
	assert.NotNil(t, w.intervals.intervals[stageKey{id, vo.StageCustomerConfirmation}].EndDate)

	r, _ := w.robots.GetByID(testCtx, robotID)
	assert.Equal(t, robot.StatusActive, r.Status())

	assert.Equal(t, "customer_confirmed", w.recorder.types()[len(w.recorder.events)-1])

	require.Len(t, w.notifier.sent, 1)
	var recipients []uint
	for _, rc := range w.notifier.sent[0].Recipients {
		recipients = append(recipients, rc.UserID)
	}
	assert.ElementsMatch(t, []uint{1, 2}, recipients)

	_, err = w.confirm().Execute(testCtx, ConfirmByCustomerCommand{TicketID: id, Rating: 5, Principal: w.endAdmin})
	assert.True(t, errors.IsValidationError(err), "second confirmation is rejected")
}
