package messages

const (
	CompetitorNotFound    = "competitor not found"
	CompetitorNotInRoster = "competitor %d is not part of the event roster"
	DuplicateCompetitor   = "competitor %d appears more than once"
	EventNotFound         = "event not found"
	InvalidSlotCount      = "slot count must be at least 1"
	OutcomeLengthMismatch = "outcome must rank exactly %d competitors, got %d"
	ParticipantNotFound   = "participant not found"
	PickCountMismatch     = "prediction must rank exactly %d competitors, got %d"
	PredictionExists      = "a prediction already exists for this event, edit it instead"
	PredictionsClosed     = "predictions are only accepted while the event is open, status is %s"
	PredictionNotFound    = "no prediction found for this event"
	RosterLocked          = "roster can only change while the event is in draft or open"
	RosterTooSmall        = "roster has %d competitors, need at least %d to publish"
	SeasonNotFound        = "season not found"
	WrongStatusTransition = "cannot %s an event in status %s"
)
