package config

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"luxride/internal/models"
)

// DSN builds the Postgres data source name. lib/pq accepts the same format,
// so the change listener reuses it.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.DBTimezone,
	)
}

// InitDB opens the configured database and migrates every persisted model.
func InitDB(cfg Config, log gormlogger.Interface) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true, Logger: log})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.DBDriver == "sqlite" {
		// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("auto-migration failed: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the tables of every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.DriverProfile{},
		&models.Booking{},
		&models.BookingDraft{},
		&models.Notification{},
		&models.Favorite{},
		&models.RecentLocation{},
		&models.SavedPlace{},
		&models.PopularDestination{},
		&models.ScheduledRide{},
		&models.Rating{},
	)
}
