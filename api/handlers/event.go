package handlers

import (
	"net/http"
	"rankcast/api/dto"
	eventservice "rankcast/api/services/event"
	"rankcast/pkg/database/models"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Event handler.
type EventHandler struct {
	eventService *eventservice.EventService
}

type EventHandlerDependencies struct {
	EventService *eventservice.EventService
}

// Create a new instance of the event handler.
func NewEventHandler(deps *EventHandlerDependencies) *EventHandler {
	return &EventHandler{
		eventService: deps.EventService,
	}
}

// CreateEvent handles the creation of a draft event.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in the YYYY-MM-DD format"})
		return
	}

	event, err := h.eventService.Create(req.Name, date, req.SlotCount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": (&dto.EventResponse{}).FromModel(event)})
}

// GetEvent handles a single event fetch, roster included.
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	event, err := h.eventService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": (&dto.EventResponse{}).FromModel(event)})
}

// ListEvents handles the event listing, optionally filtered by status.
func (h *EventHandler) ListEvents(c *gin.Context) {
	status := models.EventStatus(c.Query("status"))

	events, err := h.eventService.List(status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": (&dto.EventResponse{}).FromModelSlice(events)})
}

// PublishEvent opens a draft event for predictions.
func (h *EventHandler) PublishEvent(c *gin.Context) {
	h.transition(c, h.eventService.Publish)
}

// LockEvent closes an open event for predictions.
func (h *EventHandler) LockEvent(c *gin.Context) {
	h.transition(c, h.eventService.Lock)
}

// ReopenEvent reverts a locked event back to open.
func (h *EventHandler) ReopenEvent(c *gin.Context) {
	h.transition(c, h.eventService.Reopen)
}

// FinalizeEvent enters the outcome and scores every prediction.
func (h *EventHandler) FinalizeEvent(c *gin.Context) {
	id, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	var req dto.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.eventService.Finalize(c.Request.Context(), id, req.Outcome)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": summary})
}

// DeleteEvent removes an event and its predictions.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	if err := h.eventService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "deleted"})
}

// AddCompetitor puts a competitor on the event roster.
func (h *EventHandler) AddCompetitor(c *gin.Context) {
	id, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	var req dto.AddCompetitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.eventService.AddCompetitor(id, req.CompetitorID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "added"})
}

// RemoveCompetitor takes a competitor off the event roster.
func (h *EventHandler) RemoveCompetitor(c *gin.Context) {
	id, ok := pathID(c, "eventId")
	if !ok {
		return
	}
	competitorID, ok := pathID(c, "competitorId")
	if !ok {
		return
	}

	if err := h.eventService.RemoveCompetitor(id, competitorID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "removed"})
}

// transition runs one of the id-only lifecycle moves.
func (h *EventHandler) transition(c *gin.Context, move func(uint) error) {
	id, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	if err := move(id); err != nil {
		respondError(c, err)
		return
	}

	event, err := h.eventService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": (&dto.EventResponse{}).FromModel(event)})
}

// pathID parses a numeric path parameter, writing the rejection itself.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Params.ByName(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive number"})
		return 0, false
	}
	return uint(id), true
}
