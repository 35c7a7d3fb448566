package main

import (
	"log"
	"os"
	"rankcast/api/cache"
	"rankcast/api/modules"
	"rankcast/api/routes"
	"rankcast/pkg/config"
	"rankcast/pkg/database"
	"rankcast/pkg/notifier"
	"rankcast/pkg/redis"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	config.LoadEnv()

	db, err := database.NewConnection()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		log.Fatalf("Error getting the sql connection: %v", err)
	}
	if err := database.RunMigrations(sqlDb); err != nil {
		log.Fatalf("Error running the migrations: %v", err)
	}

	redisClient := redis.GetClient()
	defer redisClient.Close()

	memCache := cache.NewMemCache()
	defer memCache.Close()

	// Create a module with all necessary handlers.
	module := modules.NewModule(&modules.ModuleDependencies{
		DB:       db,
		MemCache: memCache,
		Redis:    redisClient,
		Notifier: notifier.NewRedisNotifier(redisClient),
	})

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.EventHandler,
		module.PredictionHandler,
		module.ParticipantHandler,
		module.SeasonHandler,
	)

	// Start the server.
	if err := router.Run(":" + config.Server.Port); err != nil {
		log.Fatalf("Error running the server: %v", err)
	}
}
