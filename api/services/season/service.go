package seasonservice

import (
	"context"
	"encoding/json"
	"rankcast/api/cache"
	"rankcast/api/dto"
	"rankcast/api/repositories"
	"rankcast/pkg/apperror"
	"rankcast/pkg/database/models"
	"rankcast/pkg/messages"
	"rankcast/pkg/seasonal"
	"sort"
	"time"

	"gorm.io/gorm"
)

const (
	// Archived seasons never change, so the caches can be generous.
	LeaderboardMemoryCacheDuration = 10 * time.Minute
	LeaderboardRedisCacheDuration  = time.Hour
)

// SeasonRedisClient is the slice of the Redis client the service uses.
type SeasonRedisClient interface {
	Delete(ctx context.Context, key string) error
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Season service with the repositories driving rotation and reads.
type SeasonService struct {
	db               *gorm.DB
	memCache         *cache.MemCache
	redis            SeasonRedisClient
	EventRepository  repositories.EventRepository
	SeasonRepository repositories.SeasonRepository
}

// SeasonServiceDeps is the dependency list for the season service.
type SeasonServiceDeps struct {
	DB       *gorm.DB
	MemCache *cache.MemCache
	Redis    SeasonRedisClient
}

// NewSeasonService creates a season service.
func NewSeasonService(deps *SeasonServiceDeps) *SeasonService {
	return &SeasonService{
		db:               deps.DB,
		memCache:         deps.MemCache,
		redis:            deps.Redis,
		EventRepository:  repositories.NewEventRepository(deps.DB),
		SeasonRepository: repositories.NewSeasonRepository(deps.DB),
	}
}

// RunRotation materializes a season row for every window spanned by any
// event, then archives every window that fully elapsed before now. Safe to
// re-run: already archived seasons are reported, not re-written.
func (s *SeasonService) RunRotation(ctx context.Context, now time.Time) (*dto.RotationReport, error) {
	events, err := s.EventRepository.ListAll()
	if err != nil {
		return nil, err
	}

	// Every spanned window gets its season row. Only finished events feed
	// the archives.
	spanned := make(map[int]bool)
	finishedBySeason := make(map[int][]uint)
	for i := range events {
		number := seasonal.SeasonNumber(events[i].Date)
		if number == 0 {
			continue
		}
		spanned[number] = true
		if events[i].Status == models.EventFinished {
			finishedBySeason[number] = append(finishedBySeason[number], events[i].ID)
		}
	}

	numbers := make([]int, 0, len(spanned))
	for number := range spanned {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)

	report := &dto.RotationReport{SeasonsSeen: len(numbers)}

	currentNumber := seasonal.SeasonNumber(now)
	for _, number := range numbers {
		season, err := s.ensureSeason(number)
		if err != nil {
			return nil, err
		}

		// Only windows fully in the past get archived.
		if number >= currentNumber {
			report.Pending = append(report.Pending, number)
			continue
		}

		archived, err := s.archiveSeason(ctx, season, finishedBySeason[number])
		if err != nil {
			return nil, err
		}
		if archived {
			report.Archived = append(report.Archived, number)
		} else {
			report.AlreadyArchived = append(report.AlreadyArchived, number)
		}
	}

	return report, nil
}

// GetLeaderboard returns the archived leaderboard of a season, cached in
// both tiers.
func (s *SeasonService) GetLeaderboard(ctx context.Context, number int) ([]*dto.SeasonLeaderboardEntry, error) {
	key := cache.SeasonLeaderboardKey(number)

	if s.memCache != nil {
		if cached := s.memCache.Get(key); cached != nil {
			return cached.([]*dto.SeasonLeaderboardEntry), nil
		}
	}

	if redisData := s.getLeaderboardFromRedis(ctx, key); redisData != nil {
		if s.memCache != nil {
			s.memCache.Set(key, redisData, LeaderboardMemoryCacheDuration)
		}
		return redisData, nil
	}

	season, err := s.SeasonRepository.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if season == nil {
		return nil, apperror.NotFound(messages.SeasonNotFound)
	}

	results, err := s.SeasonRepository.LeaderboardByNumber(number)
	if err != nil {
		return nil, err
	}

	entries := make([]*dto.SeasonLeaderboardEntry, 0, len(results))
	for i := range results {
		entries = append(entries, &dto.SeasonLeaderboardEntry{
			Rank:          results[i].Rank,
			ParticipantID: results[i].ParticipantID,
			FullName:      results[i].Snapshot.FullName,
			Username:      results[i].Snapshot.Username,
			Points:        results[i].Points,
			EventsPlayed:  results[i].EventsPlayed,
		})
	}

	s.populateLeaderboardCaches(ctx, key, entries)

	return entries, nil
}

// archiveSeason writes the ranked results of an elapsed season. Returns
// false when the season was already archived.
func (s *SeasonService) archiveSeason(ctx context.Context, season *models.Season, eventIDs []uint) (bool, error) {
	done, err := s.SeasonRepository.HasResults(season.ID)
	if err != nil {
		return false, err
	}
	if done {
		return false, nil
	}

	standings, err := s.SeasonRepository.AggregateStandings(eventIDs)
	if err != nil {
		return false, err
	}

	results := make([]models.SeasonResult, 0, len(standings))
	for i := range standings {
		results = append(results, models.SeasonResult{
			SeasonID:      season.ID,
			ParticipantID: standings[i].ParticipantID,
			Rank:          i + 1,
			Points:        standings[i].Points,
			EventsPlayed:  standings[i].EventsPlayed,
			Snapshot: models.ParticipantSnapshot{
				FullName: standings[i].FullName,
				Username: standings[i].Username,
			},
		})
	}
	if err := s.SeasonRepository.CreateResults(results); err != nil {
		return false, err
	}

	s.invalidateLeaderboard(ctx, season.Number)

	return true, nil
}

// ensureSeason loads the season row for a number, creating it lazily.
func (s *SeasonService) ensureSeason(number int) (*models.Season, error) {
	season, err := s.SeasonRepository.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if season != nil {
		return season, nil
	}

	start, end := seasonal.SeasonDates(number)
	season = &models.Season{
		Number:    number,
		StartDate: start,
		EndDate:   end,
		Status:    models.SeasonClosed,
	}
	if err := s.SeasonRepository.Create(season); err != nil {
		return nil, err
	}
	return season, nil
}

// invalidateLeaderboard drops a freshly archived season from both tiers, in
// case a read cached the missing state before archival.
func (s *SeasonService) invalidateLeaderboard(ctx context.Context, number int) {
	key := cache.SeasonLeaderboardKey(number)
	if s.memCache != nil {
		s.memCache.Delete(key)
	}
	if s.redis != nil {
		s.redis.Delete(ctx, key)
	}
}

// getLeaderboardFromRedis retrieves a season leaderboard from the redis tier.
func (s *SeasonService) getLeaderboardFromRedis(ctx context.Context, key string) []*dto.SeasonLeaderboardEntry {
	if s.redis == nil {
		return nil
	}

	cached, err := s.redis.Get(ctx, key)
	if err != nil || cached == "" {
		return nil
	}

	var entries []*dto.SeasonLeaderboardEntry
	if err := json.Unmarshal([]byte(cached), &entries); err != nil {
		return nil
	}
	return entries
}

// populateLeaderboardCaches sets the memory and redis tiers.
func (s *SeasonService) populateLeaderboardCaches(ctx context.Context, key string, entries []*dto.SeasonLeaderboardEntry) {
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
