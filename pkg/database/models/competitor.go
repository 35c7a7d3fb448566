package models

// Competitor is a rankable entrant of an event roster.
// The rating is presentation data for the chat shell, never used in scoring.
type Competitor struct {
	ID            uint   `gorm:"primaryKey"`
	FullName      string `gorm:"type:varchar(128);not null;uniqueIndex"`
	CurrentRating int
}
