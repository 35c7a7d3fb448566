package models

import (
	"time"
)

// Status an event moves through. Transitions are operator-driven and guarded
// by the event service; FINISHED is terminal.
type EventStatus string

const (
	EventDraft    EventStatus = "DRAFT"
	EventOpen     EventStatus = "OPEN"
	EventLive     EventStatus = "LIVE"
	EventFinished EventStatus = "FINISHED"
)

// Event is one contest occasion. SlotCount is how many ranked positions a
// prediction must fill and varies per event.
//
// Results stays nil until the event is finished and is immutable afterwards.
type Event struct {
	ID        uint        `gorm:"primaryKey"`
	Name      string      `gorm:"type:varchar(128);not null"`
	Date      time.Time   `gorm:"not null;index"`
	SlotCount int         `gorm:"not null"`
	Status    EventStatus `gorm:"type:varchar(10);not null;default:'DRAFT';index"`

	// Competitor id -> final rank. Stored as JSON.
	Results map[uint]int `gorm:"serializer:json"`

	Roster      []Competitor `gorm:"many2many:event_competitors"`
	Predictions []Prediction `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
