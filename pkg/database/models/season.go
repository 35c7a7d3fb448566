package models

import (
	"time"
)

// Season statuses. A season is stored closed; whether it is the currently
// running one is derived from its window at read time.
const (
	SeasonActive = "active"
	SeasonClosed = "closed"
)

// Season is one 7 day accounting window, numbered sequentially from the
// anchor date. Created lazily when the first event falls inside its window.
type Season struct {
	ID        uint      `gorm:"primaryKey"`
	Number    int       `gorm:"not null;uniqueIndex"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	Status    string    `gorm:"type:varchar(10);not null;default:'closed'"`
}

// SeasonResult is the write-once ranked snapshot of one participant inside
// one season. The uniqueness of (season, participant) is what makes archival
// safe to re-run.
type SeasonResult struct {
	ID            uint `gorm:"primaryKey"`
	SeasonID      uint `gorm:"not null;uniqueIndex:idx_season_result_season_participant"`
	ParticipantID uint `gorm:"not null;uniqueIndex:idx_season_result_season_participant"`
	Rank          int  `gorm:"not null"`
	Points        int  `gorm:"not null"`
	EventsPlayed  int  `gorm:"not null;default:0"`

	Snapshot ParticipantSnapshot `gorm:"serializer:json"`

	CreatedAt time.Time
}
