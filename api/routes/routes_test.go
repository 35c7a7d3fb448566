package routes

import (
	"testing"

	"rankcast/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter()

	assert.NotNil(t, router)
	assert.NotNil(t, router.engine)
	assert.NotNil(t, router.api)
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter()

	router.SetupRoutes(
		&handlers.EventHandler{},
		&handlers.PredictionHandler{},
		&handlers.ParticipantHandler{},
		&handlers.SeasonHandler{},
	)

	routes := router.engine.Routes()
	assert.Greater(t, len(routes), 0)

	paths := make(map[string]bool, len(routes))
	for _, route := range routes {
		paths[route.Method+" "+route.Path] = true
	}

	assert.True(t, paths["POST /api/v1/events"])
	assert.True(t, paths["POST /api/v1/events/:eventId/finalize"])
	assert.True(t, paths["PUT /api/v1/events/:eventId/predictions"])
	assert.True(t, paths["GET /api/v1/participants/:participantId/stats"])
	assert.True(t, paths["POST /api/v1/seasons/rotate"])
	assert.True(t, paths["GET /api/v1/seasons/:number/leaderboard"])
}
