package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rankcast/pkg/config"
	"rankcast/scheduler/jobs"

	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	config.LoadEnv()

	log.Println("Starting scheduler.")

	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	registerJobs(s)

	s.Start()

	defer func() {
		if err := s.Shutdown(); err != nil {
			log.Printf("Error shutting down scheduler: %v", err)
		}
	}()

	// Block until a termination signal arrives.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutting down scheduler...")
}

// registerJobs wires every periodic job into the scheduler.
func registerJobs(s gocron.Scheduler) {
	// Season rotation runs every Monday shortly after the previous window
	// closed, and once on startup to catch up after downtime.
	_, err := s.NewJob(
		gocron.WeeklyJob(
			1,
			gocron.NewWeekdays(time.Monday),
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 10, 0),
			),
		),
		gocron.NewTask(
			jobs.RotateSeasons,
		),
		gocron.WithName("season-rotation"),
		gocron.WithTags("seasons"),
		gocron.JobOption(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Fatalf("Failed to create season rotation job: %v", err)
	}
}
