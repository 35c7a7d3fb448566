package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"rankcast/pkg/redis"
	"time"

	"github.com/google/uuid"
)

// Channel the finalize facts are published on. The chat shell subscribes here
// to fan the per-participant messages out; delivery is best-effort and fully
// decoupled from the finalize transaction, which has already committed.
const FinalizedChannel = "rankcast:events:finalized"

// ParticipantResult is one participant's outcome inside a finalize fact.
type ParticipantResult struct {
	ParticipantID uint   `json:"participant_id"`
	Username      string `json:"username"`
	FullName      string `json:"full_name"`
	Points        int    `json:"points"`
	ExactHits     int    `json:"exact_hits"`
}

// FinalizeCompleted is the fact emitted after a successful finalize commit.
// Standings are ordered by points descending, earlier submission first on ties.
type FinalizeCompleted struct {
	ID          string              `json:"id"`
	EventID     uint                `json:"event_id"`
	EventName   string              `json:"event_name"`
	EventDate   time.Time           `json:"event_date"`
	Results     map[uint]int        `json:"results"`
	Standings   []ParticipantResult `json:"standings"`
	FinalizedAt time.Time           `json:"finalized_at"`
}

// RedisNotifier publishes finalize facts over Redis pub/sub.
type RedisNotifier struct {
	redis *redis.RedisClient
}

// NewRedisNotifier creates a notifier on top of the shared Redis client.
func NewRedisNotifier(redisClient *redis.RedisClient) *RedisNotifier {
	return &RedisNotifier{redis: redisClient}
}

// PublishFinalizeCompleted assigns the fact an id and publishes it.
func (n *RedisNotifier) PublishFinalizeCompleted(ctx context.Context, fact FinalizeCompleted) error {
	fact.ID = uuid.NewString()
	if fact.FinalizedAt.IsZero() {
		fact.FinalizedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(fact)
	if err != nil {
		return fmt.Errorf("couldn't marshal the finalize fact: %w", err)
	}

	return n.redis.Publish(ctx, FinalizedChannel, payload).Err()
}
