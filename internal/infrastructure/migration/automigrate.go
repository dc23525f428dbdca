package migration

import (
	"ticketdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketModel{},
		&models.APIRequestModel{},
	}
}
