package participantservice

import (
	"context"
	"encoding/json"
	"rankcast/api/cache"
	"rankcast/api/dto"
	"rankcast/api/repositories"
	"rankcast/pkg/apperror"
	"rankcast/pkg/messages"
	"rankcast/pkg/streak"
	"time"

	"gorm.io/gorm"
)

const (
	LeaderboardMemoryCacheDuration = time.Minute
	LeaderboardRedisCacheDuration  = 10 * time.Minute
	leaderboardLimit               = 100
)

// ParticipantRedisClient is the slice of the Redis client the service uses.
type ParticipantRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Participant service with the repositories backing the stats view.
type ParticipantService struct {
	db                    *gorm.DB
	memCache              *cache.MemCache
	redis                 ParticipantRedisClient
	EventRepository       repositories.EventRepository
	ParticipantRepository repositories.ParticipantRepository
	PredictionRepository  repositories.PredictionRepository
}

// ParticipantServiceDeps is the dependency list for the participant service.
type ParticipantServiceDeps struct {
	DB       *gorm.DB
	MemCache *cache.MemCache
	Redis    ParticipantRedisClient
}

// NewParticipantService creates a participant service.
func NewParticipantService(deps *ParticipantServiceDeps) *ParticipantService {
	return &ParticipantService{
		db:                    deps.DB,
		memCache:              deps.MemCache,
		redis:                 deps.Redis,
		EventRepository:       repositories.NewEventRepository(deps.DB),
		ParticipantRepository: repositories.NewParticipantRepository(deps.DB),
		PredictionRepository:  repositories.NewPredictionRepository(deps.DB),
	}
}

// GetStats assembles the full statistics view of a participant. The streak
// cache is refreshed on every view by replaying the event timeline.
func (s *ParticipantService) GetStats(participantID uint) (*dto.ParticipantStats, error) {
	participant, err := s.ParticipantRepository.GetByID(participantID)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, apperror.NotFound(messages.ParticipantNotFound)
	}

	current, max, err := s.recalculateStreaks(participantID)
	if err != nil {
		return nil, err
	}
	if current != participant.CurrentStreak || max != participant.MaxStreak {
		if err := s.ParticipantRepository.UpdateStreaks(participantID, current, max); err != nil {
			return nil, err
		}
	}

	rank, err := s.ParticipantRepository.GlobalRank(participant.TotalPoints)
	if err != nil {
		return nil, err
	}

	return &dto.ParticipantStats{
		ParticipantID: participant.ID,
		Username:      participant.Username,
		FullName:      participant.FullName,
		TotalPoints:   participant.TotalPoints,
		AccuracyRate:  participant.AccuracyRate,
		AvgError:      participant.AvgError,
		EventsPlayed:  participant.EventsPlayed,
		ExactGuesses:  participant.ExactGuesses,
		PerfectEvents: participant.PerfectEvents,
		CurrentStreak: current,
		MaxStreak:     max,
		GlobalRank:    rank,
	}, nil
}

// GetLeaderboard returns the lifetime leaderboard, cached in both tiers.
func (s *ParticipantService) GetLeaderboard(ctx context.Context) ([]*dto.LifetimeLeaderboardEntry, error) {
	key := cache.LifetimeLeaderboardKey

	if s.memCache != nil {
		if cached := s.memCache.Get(key); cached != nil {
			return cached.([]*dto.LifetimeLeaderboardEntry), nil
		}
	}

	if redisData := s.getLeaderboardFromRedis(ctx, key); redisData != nil {
		if s.memCache != nil {
			s.memCache.Set(key, redisData, LeaderboardMemoryCacheDuration)
		}
		return redisData, nil
	}

	participants, err := s.ParticipantRepository.ListLeaderboard(leaderboardLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]*dto.LifetimeLeaderboardEntry, 0, len(participants))
	for i := range participants {
		entries = append(entries, &dto.LifetimeLeaderboardEntry{
			Position:      uint(i + 1),
			ParticipantID: participants[i].ID,
			Username:      participants[i].Username,
			FullName:      participants[i].FullName,
			TotalPoints:   participants[i].TotalPoints,
			AccuracyRate:  participants[i].AccuracyRate,
			EventsPlayed:  participants[i].EventsPlayed,
		})
	}

	s.populateLeaderboardCaches(ctx, key, entries)

	return entries, nil
}

// recalculateStreaks replays every published event in chronological order
// against the participant's submission set.
func (s *ParticipantService) recalculateStreaks(participantID uint) (current, max int, err error) {
	events, err := s.EventRepository.ListNonDraftChronological()
	if err != nil {
		return 0, 0, err
	}

	eventIDs, err := s.PredictionRepository.ListEventIDsByParticipant(participantID)
	if err != nil {
		return 0, 0, err
	}
	predicted := make(map[uint]bool, len(eventIDs))
	for _, id := range eventIDs {
		predicted[id] = true
	}

	participated := make([]bool, len(events))
	for i := range events {
		participated[i] = predicted[events[i].ID]
	}

	current, max = streak.Walk(participated)
	return current, max, nil
}

// getLeaderboardFromRedis retrieves the leaderboard from the redis tier.
func (s *ParticipantService) getLeaderboardFromRedis(ctx context.Context, key string) []*dto.LifetimeLeaderboardEntry {
	if s.redis == nil {
		return nil
	}

	cached, err := s.redis.Get(ctx, key)
	if err != nil || cached == "" {
		return nil
	}

	var entries []*dto.LifetimeLeaderboardEntry
	if err := json.Unmarshal([]byte(cached), &entries); err != nil {
		return nil
	}
	return entries
}

// populateLeaderboardCaches sets the memory and redis tiers.
func (s *ParticipantService) populateLeaderboardCaches(ctx context.Context, key string, entries []*dto.LifetimeLeaderboardEntry) {
	if s.memCache != nil {
		s.memCache.Set(key, entries, LeaderboardMemoryCacheDuration)
	}

	if s.redis == nil {
		return
	}
	if j, err := json.Marshal(entries); err == nil {
		s.redis.Set(ctx, key, string(j), LeaderboardRedisCacheDuration)
	}
}
