package dto

// One archived row of a season leaderboard. The identity fields come from
// the snapshot taken at archival time.
type SeasonLeaderboardEntry struct {
	Rank          int    `json:"rank"`
	ParticipantID uint   `json:"participant_id"`
	FullName      string `json:"full_name"`
	Username      string `json:"username"`
	Points        int    `json:"points"`
	EventsPlayed  int    `json:"events_played"`
}

// One row of the lifetime leaderboard.
type LifetimeLeaderboardEntry struct {
	Position      uint    `json:"position"`
	ParticipantID uint    `json:"participant_id"`
	Username      string  `json:"username"`
	FullName      string  `json:"full_name"`
	TotalPoints   int     `json:"total_points"`
	AccuracyRate  float64 `json:"accuracy_rate"`
	EventsPlayed  int     `json:"events_played"`
}

// One participant inside a finalize summary, ordered by points descending,
// earlier submission winning ties.
type FinalizeStanding struct {
	Position      int    `json:"position"`
	ParticipantID uint   `json:"participant_id"`
	Username      string `json:"username"`
	Points        int    `json:"points"`
}

// Operator-facing summary returned by a successful finalize.
type FinalizeSummary struct {
	EventID   uint               `json:"event_id"`
	EventName string             `json:"event_name"`
	Processed int                `json:"processed"`
	Standings []FinalizeStanding `json:"standings"`
}

// Outcome of one season rotation run.
type RotationReport struct {
	SeasonsSeen     int   `json:"seasons_seen"`
	Archived        []int `json:"archived,omitempty"`
	AlreadyArchived []int `json:"already_archived,omitempty"`
	Pending         []int `json:"pending,omitempty"`
}
