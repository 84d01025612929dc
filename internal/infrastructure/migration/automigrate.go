package migration

import (
	"helpdesk/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every model the schema covers, in dependency
// order for readability only; no foreign keys are declared.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserTypeModel{},
		&models.TicketTypeModel{},
		&models.UserModel{},
		&models.SessionModel{},
		&models.TicketModel{},
		&models.TicketFileModel{},
	}
}
