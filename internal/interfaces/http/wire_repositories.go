package http

import (
	"gorm.io/gorm"

	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/repository"
)

// repositories holds every repository created during infrastructure setup.
type repositories struct {
	organization *repository.OrganizationRepository
	contract     *repository.ContractRepository
	user         *repository.UserRepository
	session      *repository.SessionRepository
	robot        *repository.RobotRepository
	maintenance  *repository.MaintenanceRepository
	ticket       *repository.TicketRepository
	comment      *repository.CommentRepository
	stage        *repository.StageRepository
	interval     *repository.IntervalRepository
	rating       *repository.RatingRepository
	timeline     *repository.TimelineEventRepository
	library      *repository.LibraryRepository
	file         *repository.FileRepository
	notification *repository.NotificationRepository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		organization: repository.NewOrganizationRepository(db),
		contract:     repository.NewContractRepository(db),
		user:         repository.NewUserRepository(db),
		session:      repository.NewSessionRepository(db),
		robot:        repository.NewRobotRepository(db),
		maintenance:  repository.NewMaintenanceRepository(db),
		ticket:       repository.NewTicketRepository(db),
		comment:      repository.NewCommentRepository(db),
		stage:        repository.NewStageRepository(db),
		interval:     repository.NewIntervalRepository(db),
		rating:       repository.NewRatingRepository(db),
		timeline:     repository.NewTimelineEventRepository(db),
		library:      repository.NewLibraryRepository(db),
		file:         repository.NewFileRepository(db),
		notification: repository.NewNotificationRepository(db),
	}
}
