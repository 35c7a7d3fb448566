package dto

import (
	"rankcast/pkg/database/models"
	"time"
)

// Payload to create a draft event.
type CreateEventRequest struct {
	Name      string `json:"name" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	SlotCount int    `json:"slot_count" binding:"required,min=1"`
}

// Payload to finalize an event: competitor ids in final order, winner first.
type FinalizeRequest struct {
	Outcome []uint `json:"outcome" binding:"required"`
}

// Payload to add a competitor to an event roster.
type AddCompetitorRequest struct {
	CompetitorID uint `json:"competitor_id" binding:"required"`
}

// One roster entry on an event response.
type CompetitorResponse struct {
	ID            uint   `json:"id"`
	FullName      string `json:"full_name"`
	CurrentRating int    `json:"current_rating"`
}

// Result of an event fetch.
type EventResponse struct {
	ID        uint                 `json:"id"`
	Name      string               `json:"name"`
	Date      time.Time            `json:"date"`
	SlotCount int                  `json:"slot_count"`
	Status    string               `json:"status"`
	Results   map[uint]int         `json:"results,omitempty"`
	Roster    []CompetitorResponse `json:"roster,omitempty"`
}

// FromModel converts an event model into the response shape.
func (e *EventResponse) FromModel(event *models.Event) *EventResponse {
	response := &EventResponse{
		ID:        event.ID,
		Name:      event.Name,
		Date:      event.Date,
		SlotCount: event.SlotCount,
		Status:    string(event.Status),
		Results:   event.Results,
	}

	for _, competitor := range event.Roster {
		response.Roster = append(response.Roster, CompetitorResponse{
			ID:            competitor.ID,
			FullName:      competitor.FullName,
			CurrentRating: competitor.CurrentRating,
		})
	}

	return response
}

// FromModelSlice converts a slice of event models.
func (e *EventResponse) FromModelSlice(events []models.Event) []*EventResponse {
	responses := make([]*EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, e.FromModel(&events[i]))
	}
	return responses
}
