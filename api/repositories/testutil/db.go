package testutil

import (
	"fmt"
	"rankcast/pkg/database/models"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestConnection opens an isolated in-memory database with the full
// schema migrated. Each test gets its own database through the DSN name.
func NewTestConnection(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", sanitizeName(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open the test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Participant{},
		&models.Competitor{},
		&models.Event{},
		&models.Prediction{},
		&models.Season{},
		&models.SeasonResult{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate the test schema: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get the sql connection: %v", err)
	}

	cleanup := func() {
		sqlDB.Close()
	}

	return db, cleanup
}

// FailUpdatesAfter registers a callback making every update statement past
// the given count fail, to prove a transaction rolls back halfway through.
func FailUpdatesAfter(t *testing.T, db *gorm.DB, allowed int) {
	t.Helper()

	seen := 0
	err := db.Callback().Update().Before("gorm:update").Register("testutil:fail_updates", func(tx *gorm.DB) {
		seen++
		if seen > allowed {
			tx.AddError(fmt.Errorf("injected update failure"))
		}
	})
	if err != nil {
		t.Fatalf("Failed to register the fault callback: %v", err)
	}
}

// sanitizeName turns a test name into a valid DSN database name.
func sanitizeName(name string) string {
	replacer := strings.NewReplacer("/", "_", " ", "_", "#", "_")
	return replacer.Replace(name)
}
