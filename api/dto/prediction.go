package dto

import (
	"rankcast/pkg/database/models"
	"time"
)

// Payload to submit or edit a prediction.
type SubmitPredictionRequest struct {
	ParticipantID uint   `json:"participant_id" binding:"required"`
	Picks         []uint `json:"picks" binding:"required"`
}

// Result of a prediction fetch or submission.
type PredictionResponse struct {
	ID            uint      `json:"id"`
	EventID       uint      `json:"event_id"`
	ParticipantID uint      `json:"participant_id"`
	Picks         []uint    `json:"picks"`
	PointsEarned  *int      `json:"points_earned,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromModel converts a prediction model into the response shape.
func (p *PredictionResponse) FromModel(prediction *models.Prediction) *PredictionResponse {
	return &PredictionResponse{
		ID:            prediction.ID,
		EventID:       prediction.EventID,
		ParticipantID: prediction.ParticipantID,
		Picks:         prediction.Picks,
		PointsEarned:  prediction.PointsEarned,
		CreatedAt:     prediction.CreatedAt,
	}
}
