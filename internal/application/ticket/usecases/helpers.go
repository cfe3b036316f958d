package usecases

import (
	"context"

	notificationuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/notification/usecases"
	timelineuc "github.com/automationyuli-li/RobotCare-sub001/internal/application/timeline/usecases"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

func uintPtr(v uint) *uint { return &v }

// recordTicketEvent appends an event against the ticket's robot.
func recordTicketEvent(
	ctx context.Context,
	recorder EventRecorder,
	t *ticket.Ticket,
	eventType timeline.EventType,
	title, description string,
	metadata map[string]interface{},
	entityID *uint,
	actorID uint,
) error {
	_, err := recorder.Record(ctx, timelineuc.RecordEventCommand{
		RobotID:     t.RobotID(),
		TicketID:    uintPtr(t.ID()),
		EntityID:    entityID,
		Type:        eventType,
		Title:       title,
		Description: description,
		Metadata:    metadata,
		ActorID:     actorID,
	})
	return err
}

func toRecipients(users []*user.User) []notificationuc.Recipient {
	out := make([]notificationuc.Recipient, 0, len(users))
	for _, u := range users {
		out = append(out, notificationuc.Recipient{UserID: u.ID(), OrgID: u.OrgID(), Email: u.Email().String()})
	}
	return out
}

// orgAdmins resolves the admins of orgID. Lookup failures are logged and yield
// no recipients since notifications never fail the operation that raised them.
func orgAdmins(ctx context.Context, users user.Repository, log logger.Interface, orgID uint) []notificationuc.Recipient {
	admins, err := users.ListByOrgAndRoles(ctx, orgID, []authorization.Role{
		authorization.RoleServiceAdmin,
		authorization.RoleEndAdmin,
	})
	if err != nil {
		log.Warnw("failed to resolve notification recipients", "org_id", orgID, "error", err)
		return nil
	}
	return toRecipients(admins)
}

func notifyQuietly(ctx context.Context, notifier Notifier, log logger.Interface, cmd notificationuc.NotifyCommand) {
	if len(cmd.Recipients) == 0 {
		return
	}
	if err := notifier.Notify(ctx, cmd); err != nil {
		log.Warnw("failed to record notifications", "type", cmd.Type, "error", err)
	}
}
