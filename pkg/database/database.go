package database

import (
	"fmt"
	"time"

	"rankcast/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool sizing shared by the api and the scheduler. The scheduler only runs a
// single rotation at a time, the api carries the read traffic.
const (
	maxOpenConns = 100
	maxIdleConns = 10
	connLifetime = time.Hour
)

// NewConnection opens a pooled gorm connection and verifies it with a ping.
func NewConnection() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.Database.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	sqlDb, sqlErr := db.DB()
	if sqlErr != nil {
		return nil, fmt.Errorf("failed to get the sql connection: %v", sqlErr)
	}

	sqlDb.SetMaxOpenConns(maxOpenConns)
	sqlDb.SetMaxIdleConns(maxIdleConns)
	sqlDb.SetConnMaxLifetime(connLifetime)
	sqlDb.SetConnMaxIdleTime(connLifetime)

	if err := sqlDb.Ping(); err != nil {
		sqlDb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
