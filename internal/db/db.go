package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/soulsyync/soulsyync-api/internal/config"
	"github.com/soulsyync/soulsyync-api/internal/models"
	"github.com/soulsyync/soulsyync-api/pkg/logger"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.Log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		logger.Log.Fatal("failed to migrate", zap.Error(err))
	}

	return db
}

// Migrate creates or updates the schema for every entity. Shared with
// the seed command and the sqlite test harness.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Appointment{},
		&models.BlogPost{},
		&models.Horoscope{},
		&models.Subscriber{},
		&models.Testimonial{},
		&models.AuditLog{},
	)
}
