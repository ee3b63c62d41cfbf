package migrations

import (
	"gorm.io/gorm"

	"provisio/internal/infrastructure/persistence/models"
)

func MigrateProductionTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ProductionModel{},
		&models.TaskModel{},
		&models.TaskCommentModel{},
		&models.TaskFileModel{},
	)
}
