package seasonservice

import (
	"context"
	"testing"
	"time"

	"rankcast/api/cache"
	"rankcast/api/repositories/testutil"
	"rankcast/pkg/apperror"
	"rankcast/pkg/database/models"
	"rankcast/pkg/seasonal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Simple test for asserting that everything is fine with the season service creation.
func TestNewSeasonService(t *testing.T) {
	deps := &SeasonServiceDeps{
		DB: new(gorm.DB),
	}

	service := NewSeasonService(deps)
	assert.NotNil(t, service)
	assert.Equal(t, new(gorm.DB), service.db)
	assert.NotNil(t, service.SeasonRepository)
}

func TestRunRotation(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	service := NewSeasonService(&SeasonServiceDeps{DB: db})
	seedRotationFixture(t, db)

	// The clock sits inside the third window, so only the first two get
	// archived.
	now := seasonal.AnchorDate.AddDate(0, 0, 16)

	report, err := service.RunRotation(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 3, report.SeasonsSeen)
	assert.Equal(t, []int{1, 2}, report.Archived)
	assert.Empty(t, report.AlreadyArchived)
	assert.Equal(t, []int{3}, report.Pending)

	// Season one ended in a 15 point tie, broken by participant id.
	results := loadResults(t, db, 1)
	require.Len(t, results, 2)
	assert.Equal(t, uint(100), results[0].ParticipantID)
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, 15, results[0].Points)
	assert.Equal(t, 2, results[0].EventsPlayed)
	assert.Equal(t, "alice", results[0].Snapshot.Username)
	assert.Equal(t, uint(200), results[1].ParticipantID)
	assert.Equal(t, 2, results[1].Rank)
	assert.Equal(t, 15, results[1].Points)

	// Season two only had one scored participant.
	results = loadResults(t, db, 2)
	require.Len(t, results, 1)
	assert.Equal(t, uint(200), results[0].ParticipantID)
	assert.Equal(t, 12, results[0].Points)
}

func TestRunRotationIsIdempotent(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	service := NewSeasonService(&SeasonServiceDeps{DB: db})
	seedRotationFixture(t, db)

	now := seasonal.AnchorDate.AddDate(0, 0, 16)

	_, err := service.RunRotation(context.Background(), now)
	require.NoError(t, err)

	report, err := service.RunRotation(context.Background(), now)
	require.NoError(t, err)

	assert.Empty(t, report.Archived)
	assert.Equal(t, []int{1, 2}, report.AlreadyArchived)
	assert.Equal(t, []int{3}, report.Pending)

	// The archived rows were not duplicated or rewritten.
	results := loadResults(t, db, 1)
	assert.Len(t, results, 2)
}

func TestRunRotationSkipsUnscoredPredictions(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	service := NewSeasonService(&SeasonServiceDeps{DB: db})
	seedRotationFixture(t, db)

	// An unscored prediction inside the first window must not leak into the
	// archive, whatever its owner.
	var firstEvent models.Event
	require.NoError(t, db.Where("name = ?", "Season 1 Opener").First(&firstEvent).Error)
	require.NoError(t, db.Create(&models.Participant{ID: 300, Username: "carol"}).Error)
	require.NoError(t, db.Create(&models.Prediction{
		ParticipantID: 300,
		EventID:       firstEvent.ID,
		Picks:         []uint{1},
	}).Error)

	_, err := service.RunRotation(context.Background(), seasonal.AnchorDate.AddDate(0, 0, 16))
	require.NoError(t, err)

	results := loadResults(t, db, 1)
	assert.Len(t, results, 2)
}

func TestRunRotationEnsuresSpannedSeasonRows(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	service := NewSeasonService(&SeasonServiceDeps{DB: db})

	require.NoError(t, db.Create(&models.Participant{ID: 100, Username: "alice"}).Error)

	// An elapsed window holding only a still open event, and a finished
	// event inside the running window.
	events := []models.Event{
		{Name: "Never Locked", Date: windowDate(1, 2), SlotCount: 1, Status: models.EventOpen},
		{Name: "Early Finish", Date: windowDate(2, 0), SlotCount: 1, Status: models.EventFinished},
	}
	require.NoError(t, db.Create(&events).Error)
	require.NoError(t, db.Create(&models.Prediction{
		ParticipantID: 100,
		EventID:       events[1].ID,
		Picks:         []uint{1},
		PointsEarned:  intPtr(5),
	}).Error)

	// The clock sits inside the second window.
	report, err := service.RunRotation(context.Background(), seasonal.AnchorDate.AddDate(0, 0, 8))
	require.NoError(t, err)

	assert.Equal(t, 2, report.SeasonsSeen)
	assert.Equal(t, []int{2}, report.Pending)

	// Both windows got their season rows, the running one without results.
	var seasons []models.Season
	require.NoError(t, db.Order("number ASC").Find(&seasons).Error)
	require.Len(t, seasons, 2)
	assert.Equal(t, 1, seasons[0].Number)
	assert.Equal(t, 2, seasons[1].Number)

	var resultCount int64
	require.NoError(t, db.Model(&models.SeasonResult{}).Count(&resultCount).Error)
	assert.Zero(t, resultCount)
}

func TestGetLeaderboard(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	memCache := cache.NewMemCache()
	defer memCache.Close()

	service := NewSeasonService(&SeasonServiceDeps{DB: db, MemCache: memCache})
	seedRotationFixture(t, db)

	_, err := service.RunRotation(context.Background(), seasonal.AnchorDate.AddDate(0, 0, 16))
	require.NoError(t, err)

	entries, err := service.GetLeaderboard(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, uint(100), entries[0].ParticipantID)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, "Alice", entries[0].FullName)
	assert.Equal(t, 15, entries[0].Points)

	// The read went into the memory tier.
	assert.NotNil(t, memCache.Get(cache.SeasonLeaderboardKey(1)))
}

func TestGetLeaderboardUnknownSeason(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	service := NewSeasonService(&SeasonServiceDeps{DB: db})

	_, err := service.GetLeaderboard(context.Background(), 99)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

// seedRotationFixture builds finished events across three season windows with
// scored predictions: a 15 point tie in the first window, a lone scorer in
// the second and a still running third.
func seedRotationFixture(t *testing.T, db *gorm.DB) {
	t.Helper()

	participants := []models.Participant{
		{ID: 100, Username: "alice", FullName: "Alice"},
		{ID: 200, Username: "bob", FullName: "Bob"},
	}
	require.NoError(t, db.Create(&participants).Error)

	events := []models.Event{
		{Name: "Season 1 Opener", Date: windowDate(1, 0), SlotCount: 1, Status: models.EventFinished},
		{Name: "Season 1 Closer", Date: windowDate(1, 3), SlotCount: 1, Status: models.EventFinished},
		{Name: "Season 2 Single", Date: windowDate(2, 1), SlotCount: 1, Status: models.EventFinished},
		{Name: "Season 3 Running", Date: windowDate(3, 0), SlotCount: 1, Status: models.EventFinished},
	}
	require.NoError(t, db.Create(&events).Error)

	predictions := []models.Prediction{
		{ParticipantID: 100, EventID: events[0].ID, Picks: []uint{1}, PointsEarned: intPtr(10)},
		{ParticipantID: 200, EventID: events[0].ID, Picks: []uint{1}, PointsEarned: intPtr(7)},
		{ParticipantID: 100, EventID: events[1].ID, Picks: []uint{1}, PointsEarned: intPtr(5)},
		{ParticipantID: 200, EventID: events[1].ID, Picks: []uint{1}, PointsEarned: intPtr(8)},
		{ParticipantID: 200, EventID: events[2].ID, Picks: []uint{1}, PointsEarned: intPtr(12)},
		{ParticipantID: 100, EventID: events[3].ID, Picks: []uint{1}, PointsEarned: intPtr(6)},
	}
	require.NoError(t, db.Create(&predictions).Error)
}

// loadResults reads the archived rows of a season, best rank first.
func loadResults(t *testing.T, db *gorm.DB, number int) []models.SeasonResult {
	t.Helper()

	var season models.Season
	require.NoError(t, db.Where("number = ?", number).First(&season).Error)

	var results []models.SeasonResult
	require.NoError(t, db.Where("season_id = ?", season.ID).Order("rank ASC").Find(&results).Error)
	return results
}

// windowDate places a timestamp on a given day inside a season window.
func windowDate(season, day int) time.Time {
	start, _ := seasonal.SeasonDates(season)
	return start.AddDate(0, 0, day).Add(18 * time.Hour)
}

func intPtr(v int) *int {
	return &v
}
