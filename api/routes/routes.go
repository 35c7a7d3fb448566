package routes

import (
	"rankcast/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.EventHandler:
			r.registerEventHandler(handler)
		case *handlers.PredictionHandler:
			r.registerPredictionHandler(handler)
		case *handlers.ParticipantHandler:
			r.registerParticipantHandler(handler)
		case *handlers.SeasonHandler:
			r.registerSeasonHandler(handler)
		}
	}
}

// Register the event handler.
func (r *Router) registerEventHandler(handler *handlers.EventHandler) {
	events := r.api.Group("/events")
	{
		events.POST("", handler.CreateEvent)
		events.GET("", handler.ListEvents)
		events.GET("/:eventId", handler.GetEvent)
		events.DELETE("/:eventId", handler.DeleteEvent)
		events.POST("/:eventId/publish", handler.PublishEvent)
		events.POST("/:eventId/lock", handler.LockEvent)
		events.POST("/:eventId/reopen", handler.ReopenEvent)
		events.POST("/:eventId/finalize", handler.FinalizeEvent)
		events.POST("/:eventId/competitors", handler.AddCompetitor)
		events.DELETE("/:eventId/competitors/:competitorId", handler.RemoveCompetitor)
	}
}

// Register the prediction handler.
func (r *Router) registerPredictionHandler(handler *handlers.PredictionHandler) {
	predictions := r.api.Group("/events/:eventId/predictions")
	{
		predictions.POST("", handler.SubmitPrediction)
		predictions.PUT("", handler.EditPrediction)
		predictions.GET("", handler.ListPredictions)
		predictions.GET("/:participantId", handler.GetPrediction)
	}
}

// Register the participant handler.
func (r *Router) registerParticipantHandler(handler *handlers.ParticipantHandler) {
	participants := r.api.Group("/participants")
	{
		participants.GET("/leaderboard", handler.GetLeaderboard)
		participants.GET("/:participantId/stats", handler.GetStats)
	}
}

// Register the season handler.
func (r *Router) registerSeasonHandler(handler *handlers.SeasonHandler) {
	seasons := r.api.Group("/seasons")
	{
		seasons.POST("/rotate", handler.RotateSeasons)
		seasons.GET("/:number/leaderboard", handler.GetLeaderboard)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
