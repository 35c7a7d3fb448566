package modules

import (
	"rankcast/api/cache"
	"rankcast/api/handlers"
	eventservice "rankcast/api/services/event"
	"rankcast/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ModuleDependencies holds the shared infrastructure every handler builds on.
type ModuleDependencies struct {
	DB       *gorm.DB
	MemCache *cache.MemCache
	Redis    *redis.RedisClient
	Notifier eventservice.Notifier
}

// Module containing the necessary handlers.
type Module struct {
	Router             *gin.Engine
	EventHandler       *handlers.EventHandler
	PredictionHandler  *handlers.PredictionHandler
	ParticipantHandler *handlers.ParticipantHandler
	SeasonHandler      *handlers.SeasonHandler
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()

	return &Module{
		Router:             router,
		EventHandler:       initializeEventHandler(deps),
		PredictionHandler:  initializePredictionHandler(deps),
		ParticipantHandler: initializeParticipantHandler(deps),
		SeasonHandler:      initializeSeasonHandler(deps),
	}
}
