package database

import (
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate выполняет авто-миграцию схемы.
// Порядок важен: таблицы со ссылками идут после таблиц-владельцев.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 для первичных ключей BaseModel
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.EmployerProfile{},
		&models.CandidateProfile{},
		&models.TeamMember{},
		&models.Subscription{},
		&models.Job{},
		&models.Application{},
		&models.PrivacySetting{},
		&models.ProfileView{},
		&models.Notification{},
		&models.AuditLog{},
	)
	if err != nil {
		return err
	}

	logger.Info("database schema migrated")
	return nil
}
