package models

import (
	"time"
)

// Prediction is one participant's ordered guess for one event, unique on the
// (participant, event) pair. Picks holds competitor ids in predicted order,
// index 0 being the predicted winner.
//
// PointsEarned stays nil until the owning event is finalized. CreatedAt
// breaks ties in the finalize summary, earlier submission winning.
type Prediction struct {
	ID            uint   `gorm:"primaryKey"`
	ParticipantID uint   `gorm:"not null;uniqueIndex:idx_prediction_participant_event"`
	EventID       uint   `gorm:"not null;uniqueIndex:idx_prediction_participant_event;index"`
	Picks         []uint `gorm:"serializer:json;not null"`
	PointsEarned  *int

	CreatedAt time.Time

	Participant Participant `gorm:"foreignKey:ParticipantID"`
}
