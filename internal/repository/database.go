package repository

import (
	"fmt"

	"github.com/newcity-hq/newcity-api/internal/config"
	"github.com/newcity-hq/newcity-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase creates a new database connection
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	return db, nil
}

// Migrate runs auto migration for all models. The join tables are registered
// first so gorm routes many2many writes through them (user_interests carries
// a position column the default join table would lose).
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.User{}, "Interests", &models.UserInterest{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Interest{}, "Users", &models.UserInterest{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.User{}, "Tags", &models.UserTag{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Tag{}, "Users", &models.UserTag{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Event{}, "Tags", &models.EventTag{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&models.Tag{}, "Events", &models.EventTag{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Interest{},
		&models.Tag{},
		&models.Event{},
		&models.RSVP{},
	)
}
