package repository

import (
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/file"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/library"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/notification"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/robot"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/ticket"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/timeline"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
)

var (
	_ organization.Repository         = (*OrganizationRepository)(nil)
	_ organization.ContractRepository = (*ContractRepository)(nil)
	_ user.Repository                 = (*UserRepository)(nil)
	_ user.SessionRepository          = (*SessionRepository)(nil)
	_ robot.Repository                = (*RobotRepository)(nil)
	_ robot.MaintenanceRepository     = (*MaintenanceRepository)(nil)
	_ ticket.TicketRepository         = (*TicketRepository)(nil)
	_ ticket.StageRepository          = (*StageRepository)(nil)
	_ ticket.IntervalRepository       = (*IntervalRepository)(nil)
	_ ticket.CommentRepository        = (*CommentRepository)(nil)
	_ ticket.RatingRepository         = (*RatingRepository)(nil)
	_ timeline.Repository             = (*TimelineEventRepository)(nil)
	_ library.Repository              = (*LibraryRepository)(nil)
	_ notification.Repository         = (*NotificationRepository)(nil)
	_ file.Repository                 = (*FileRepository)(nil)
)
