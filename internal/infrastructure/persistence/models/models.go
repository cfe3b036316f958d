// Package models holds the gorm persistence shapes. They carry no domain
// behavior; mappers translate them to and from domain entities.
package models

// All lists every model, in dependency-free order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&OrganizationModel{},
		&ServiceContractModel{},
		&UserModel{},
		&SessionModel{},
		&RobotModel{},
		&MaintenanceLogModel{},
		&TicketModel{},
		&TicketStageModel{},
		&TicketIntervalModel{},
		&CommentModel{},
		&RatingModel{},
		&TimelineEventModel{},
		&LibraryDocumentModel{},
		&LibraryAttachmentModel{},
		&NotificationModel{},
		&FileModel{},
	}
}
