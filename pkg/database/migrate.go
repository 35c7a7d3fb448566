package database

import (
	"database/sql"
	"fmt"
	"log"

	"rankcast/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Advisory lock key shared by the api and scheduler processes so only one of
// them applies pending migrations on startup.
const migrationLockKey = "rankcast_migrations_lock"

// RunMigrations applies every pending migration from the configured path.
// When another process holds the lock the call is a no-op.
func RunMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", config.Database.MigrationsPath),
		config.Database.Database,
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	acquired, err := tryMigrationLock(db)
	if err != nil {
		return err
	}
	if !acquired {
		log.Println("Another process is already running migrations, skipping...")
		return nil
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return releaseMigrationLock(db)
}

func tryMigrationLock(db *sql.DB) (bool, error) {
	var acquired bool
	err := db.QueryRow("SELECT pg_try_advisory_lock(hashtext($1))", migrationLockKey).Scan(&acquired)
	return acquired, err
}

func releaseMigrationLock(db *sql.DB) error {
	var released bool
	err := db.QueryRow("SELECT pg_advisory_unlock(hashtext($1))", migrationLockKey).Scan(&released)
	if err != nil || !released {
		return fmt.Errorf("could not release advisory lock: %w", err)
	}
	return nil
}
