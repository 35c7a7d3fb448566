package jobs

import (
	"context"
	"fmt"
	"log"
	"rankcast/api/cache"
	seasonservice "rankcast/api/services/season"
	"rankcast/pkg/database"
	"rankcast/pkg/logger"
	"rankcast/pkg/redis"
	"time"
)

// RotateSeasons archives every fully elapsed season window and ships the
// audit trail of the run to the bucket.
func RotateSeasons() error {
	log.Println("Starting season rotation.")

	// Create a new connection pool.
	db, err := database.NewConnection()
	if err != nil {
		return fmt.Errorf("couldn't get database connection: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	redisClient := redis.GetClient()

	memCache := cache.NewMemCache()
	defer memCache.Close()

	auditLogger, err := logger.CreateLogger()
	if err != nil {
		return fmt.Errorf("couldn't create the audit logger: %w", err)
	}

	service := seasonservice.NewSeasonService(&seasonservice.SeasonServiceDeps{
		DB:       db,
		MemCache: memCache,
		Redis:    redisClient,
	})

	now := time.Now().UTC()
	report, err := service.RunRotation(context.Background(), now)
	if err != nil {
		auditLogger.Errorf("Season rotation failed: %v", err)
		uploadAudit(auditLogger, now)
		return fmt.Errorf("season rotation failed: %w", err)
	}

	auditLogger.Infof("Season rotation finished: %d seasons seen", report.SeasonsSeen)
	auditLogger.Infof("Archived: %v", report.Archived)
	auditLogger.Infof("Already archived: %v", report.AlreadyArchived)
	auditLogger.Infof("Pending: %v", report.Pending)
	uploadAudit(auditLogger, now)

	log.Printf("Finished season rotation: archived %d, already archived %d, pending %d",
		len(report.Archived), len(report.AlreadyArchived), len(report.Pending))
	return nil
}

// uploadAudit ships the trail, logging locally when the bucket is unreachable.
func uploadAudit(auditLogger *logger.AuditLogger, now time.Time) {
	objectKey := fmt.Sprintf("rotations/%s.log", now.Format("2006-01-02T15-04-05"))
	if err := auditLogger.UploadToS3Bucket(objectKey); err != nil {
		log.Printf("Couldn't upload the rotation audit log: %v", err)
	}
}
