package migration

import (
	"helpdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.OrganizationModel{},
		&models.ProfileModel{},
		&models.InvitationModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.ActivityModel{},
	}
}
