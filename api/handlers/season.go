package handlers

import (
	"net/http"
	seasonservice "rankcast/api/services/season"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Season handler.
type SeasonHandler struct {
	seasonService *seasonservice.SeasonService
}

type SeasonHandlerDependencies struct {
	SeasonService *seasonservice.SeasonService
}

// Create a new instance of the season handler.
func NewSeasonHandler(deps *SeasonHandlerDependencies) *SeasonHandler {
	return &SeasonHandler{
		seasonService: deps.SeasonService,
	}
}

// RotateSeasons handles a manual rotation trigger.
func (h *SeasonHandler) RotateSeasons(c *gin.Context) {
	report, err := h.seasonService.RunRotation(c.Request.Context(), time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": report})
}

// GetLeaderboard handles an archived season leaderboard fetch.
func (h *SeasonHandler) GetLeaderboard(c *gin.Context) {
	number, err := strconv.Atoi(c.Params.ByName("number"))
	if err != nil || number < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "number must be a positive number"})
		return
	}

	entries, err := h.seasonService.GetLeaderboard(c.Request.Context(), number)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": entries})
}
