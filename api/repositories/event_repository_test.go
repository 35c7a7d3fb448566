package repositories

import (
	"testing"
	"time"

	"rankcast/api/repositories/testutil"
	"rankcast/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTransitionStatus(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewEventRepository(db)
	event := createEvent(t, db, models.EventOpen)

	moved, err := repository.TransitionStatus(event.ID, models.EventOpen, models.EventLive)
	require.NoError(t, err)
	assert.True(t, moved)

	// The second mover loses the race and must observe false.
	moved, err = repository.TransitionStatus(event.ID, models.EventOpen, models.EventLive)
	require.NoError(t, err)
	assert.False(t, moved)

	var stored models.Event
	require.NoError(t, db.First(&stored, event.ID).Error)
	assert.Equal(t, models.EventLive, stored.Status)
}

func TestDeleteCascadesToPredictions(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewEventRepository(db)
	event := createEvent(t, db, models.EventOpen)

	require.NoError(t, db.Create(&models.Participant{ID: 100, Username: "alice"}).Error)
	require.NoError(t, db.Create(&models.Prediction{
		ParticipantID: 100,
		EventID:       event.ID,
		Picks:         []uint{1},
	}).Error)

	require.NoError(t, repository.Delete(event.ID))

	var predictionCount int64
	db.Model(&models.Prediction{}).Where("event_id = ?", event.ID).Count(&predictionCount)
	assert.Equal(t, int64(0), predictionCount)

	var rosterCount int64
	db.Table("event_competitors").Where("event_id = ?", event.ID).Count(&rosterCount)
	assert.Equal(t, int64(0), rosterCount)

	deleted, err := repository.GetByID(event.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestGetByIDReturnsNilWhenMissing(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewEventRepository(db)

	event, err := repository.GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestCreateResultsIgnoresConflicts(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	repository := NewSeasonRepository(db)

	require.NoError(t, db.Create(&models.Participant{ID: 100, Username: "alice"}).Error)
	season := &models.Season{Number: 1, StartDate: time.Now(), EndDate: time.Now(), Status: models.SeasonClosed}
	require.NoError(t, repository.Create(season))

	results := []models.SeasonResult{{
		SeasonID:      season.ID,
		ParticipantID: 100,
		Rank:          1,
		Points:        10,
	}}
	require.NoError(t, repository.CreateResults(results))

	// A concurrent re-run writing the same pair is silently dropped.
	duplicate := []models.SeasonResult{{
		SeasonID:      season.ID,
		ParticipantID: 100,
		Rank:          2,
		Points:        99,
	}}
	require.NoError(t, repository.CreateResults(duplicate))

	var stored []models.SeasonResult
	require.NoError(t, db.Where("season_id = ?", season.ID).Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, 1, stored[0].Rank)
	assert.Equal(t, 10, stored[0].Points)

	has, err := repository.HasResults(season.ID)
	require.NoError(t, err)
	assert.True(t, has)
}

// createEvent inserts a minimal event with a two entrant roster.
func createEvent(t *testing.T, db *gorm.DB, status models.EventStatus) *models.Event {
	t.Helper()

	competitors := []models.Competitor{
		{ID: 1, FullName: "Competitor A"},
		{ID: 2, FullName: "Competitor B"},
	}
	require.NoError(t, db.Create(&competitors).Error)

	event := &models.Event{
		Name:      "Repository Test Event",
		Date:      time.Date(2025, time.May, 5, 18, 0, 0, 0, time.UTC),
		SlotCount: 2,
		Status:    status,
		Roster:    competitors,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}
