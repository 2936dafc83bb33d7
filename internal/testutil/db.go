// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"luxride/internal/config"
	"luxride/internal/models"
)

// NewDB returns a migrated, private in-memory SQLite database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := "file:" + models.NewID() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true, Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
