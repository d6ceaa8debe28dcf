package db

import (
	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Member{},
		&model.BusinessProfile{},
		&model.BankAccount{},
		&model.NotificationSetting{},
		&model.ActivityRegion{},
		&model.ProductPrice{},
		&model.HandlingProduct{},
		&model.Notification{},
		&model.Region{},
		&model.Admin{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
