package dto

// Full statistics view of one participant, streaks freshly recomputed.
type ParticipantStats struct {
	ParticipantID uint    `json:"participant_id"`
	Username      string  `json:"username"`
	FullName      string  `json:"full_name"`
	TotalPoints   int     `json:"total_points"`
	AccuracyRate  float64 `json:"accuracy_rate"`
	AvgError      float64 `json:"avg_error"`
	EventsPlayed  int     `json:"events_played"`
	ExactGuesses  int     `json:"exact_guesses"`
	PerfectEvents int     `json:"perfect_events"`
	CurrentStreak int     `json:"current_streak"`
	MaxStreak     int     `json:"max_streak"`
	GlobalRank    int     `json:"global_rank"`
}
