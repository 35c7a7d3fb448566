package handlers

import (
	"net/http"
	participantservice "rankcast/api/services/participant"

	"github.com/gin-gonic/gin"
)

// Participant handler.
type ParticipantHandler struct {
	participantService *participantservice.ParticipantService
}

type ParticipantHandlerDependencies struct {
	ParticipantService *participantservice.ParticipantService
}

// Create a new instance of the participant handler.
func NewParticipantHandler(deps *ParticipantHandlerDependencies) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: deps.ParticipantService,
	}
}

// GetStats handles the full statistics view of one participant.
func (h *ParticipantHandler) GetStats(c *gin.Context) {
	id, ok := pathID(c, "participantId")
	if !ok {
		return
	}

	stats, err := h.participantService.GetStats(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": stats})
}

// GetLeaderboard handles the lifetime leaderboard fetch.
func (h *ParticipantHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.participantService.GetLeaderboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": entries})
}
