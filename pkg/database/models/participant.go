package models

import (
	"time"
)

// Participant is one end user of the contest. The id is the external chat
// identity, assigned at registration, never generated here.
//
// The running aggregates are mutated only inside a finalize transaction;
// the streak fields are a cache refreshed whenever the profile is viewed.
type Participant struct {
	ID       uint   `gorm:"primaryKey;autoIncrement:false"`
	Username string `gorm:"type:varchar(64)"`
	FullName string `gorm:"type:varchar(128)"`

	TotalPoints  int     `gorm:"not null;default:0"`
	AccuracyRate float64 `gorm:"not null;default:0"` // Percentage of slots hit exactly.
	AvgError     float64 `gorm:"not null;default:0"` // Mean absolute rank error.
	TotalSlots   int     `gorm:"not null;default:0"` // Denominator for both rates.

	EventsPlayed  int `gorm:"not null;default:0"`
	ExactGuesses  int `gorm:"not null;default:0"`
	PerfectEvents int `gorm:"not null;default:0"`

	CurrentStreak int `gorm:"not null;default:0"`
	MaxStreak     int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ParticipantSnapshot is the denormalized identity stored with a season
// result, so historical leaderboards survive later renames.
type ParticipantSnapshot struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
}
