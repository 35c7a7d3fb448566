package predictionservice

import (
	"testing"
	"time"

	"rankcast/api/repositories/testutil"
	"rankcast/pkg/apperror"
	"rankcast/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Simple test for asserting that everything is fine with the prediction service creation.
func TestNewPredictionService(t *testing.T) {
	deps := &PredictionServiceDeps{
		DB: new(gorm.DB),
	}

	service := NewPredictionService(deps)
	assert.NotNil(t, service)
	assert.Equal(t, new(gorm.DB), service.db)
	assert.NotNil(t, service.PredictionRepository)
}

func TestSubmit(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	service := NewPredictionService(&PredictionServiceDeps{DB: db})
	event := seedOpenEvent(t, db)

	prediction, err := service.Submit(100, event.ID, []uint{2, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 1, 3}, prediction.Picks)
	assert.Nil(t, prediction.PointsEarned)

	// One prediction per participant and event.
	_, err = service.Submit(100, event.ID, []uint{1, 2, 3})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name          string
		participantID uint
		picks         []uint
		eventStatus   models.EventStatus
		expectedKind  apperror.Kind
	}{
		{
			name:          "draftEventTakesNoPredictions",
			participantID: 100,
			picks:         []uint{1, 2, 3},
			eventStatus:   models.EventDraft,
			expectedKind:  apperror.KindState,
		},
		{
			name:          "lockedEventTakesNoPredictions",
			participantID: 100,
			picks:         []uint{1, 2, 3},
			eventStatus:   models.EventLive,
			expectedKind:  apperror.KindState,
		},
		{
			name:          "unknownParticipant",
			participantID: 999,
			picks:         []uint{1, 2, 3},
			eventStatus:   models.EventOpen,
			expectedKind:  apperror.KindNotFound,
		},
		{
			name:          "tooFewPicks",
			participantID: 100,
			picks:         []uint{1, 2},
			eventStatus:   models.EventOpen,
			expectedKind:  apperror.KindValidation,
		},
		{
			name:          "duplicatedPick",
			participantID: 100,
			picks:         []uint{1, 2, 1},
			eventStatus:   models.EventOpen,
			expectedKind:  apperror.KindValidation,
		},
		{
			name:          "pickOutsideTheRoster",
			participantID: 100,
			picks:         []uint{1, 2, 42},
			eventStatus:   models.EventOpen,
			expectedKind:  apperror.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, cleanup := testutil.NewTestConnection(t)
			defer cleanup()

			service := NewPredictionService(&PredictionServiceDeps{DB: db})
			event := seedOpenEvent(t, db)
			if tt.eventStatus != models.EventOpen {
				db.Model(&models.Event{}).Where("id = ?", event.ID).Update("status", tt.eventStatus)
			}

			_, err := service.Submit(tt.participantID, event.ID, tt.picks)
			require.Error(t, err)
			assert.Equal(t, tt.expectedKind, apperror.KindOf(err))
		})
	}
}

func TestSubmitUnknownEvent(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	service := NewPredictionService(&PredictionServiceDeps{DB: db})

	_, err := service.Submit(100, 9999, []uint{1, 2, 3})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestEdit(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	service := NewPredictionService(&PredictionServiceDeps{DB: db})
	event := seedOpenEvent(t, db)

	// Nothing to edit yet.
	_, err := service.Edit(100, event.ID, []uint{1, 2, 3})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = service.Submit(100, event.ID, []uint{1, 2, 3})
	require.NoError(t, err)

	edited, err := service.Edit(100, event.ID, []uint{3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 2, 1}, edited.Picks)

	// The replacement is the only stored prediction.
	stored, err := service.Get(100, event.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 2, 1}, stored.Picks)

	var count int64
	db.Model(&models.Prediction{}).Where("event_id = ?", event.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestListByEvent(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	service := NewPredictionService(&PredictionServiceDeps{DB: db})
	event := seedOpenEvent(t, db)

	db.Create(&models.Participant{ID: 200, Username: "bob"})

	_, err := service.Submit(100, event.ID, []uint{1, 2, 3})
	require.NoError(t, err)
	_, err = service.Submit(200, event.ID, []uint{3, 2, 1})
	require.NoError(t, err)

	predictions, err := service.ListByEvent(event.ID)
	require.NoError(t, err)
	require.Len(t, predictions, 2)
	assert.Equal(t, "alice", predictions[0].Participant.Username)
	assert.Equal(t, "bob", predictions[1].Participant.Username)

	_, err = service.ListByEvent(9999)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestEditClosedEvent(t *testing.T) {
	db, cleanup := testutil.NewTestConnection(t)
	defer cleanup()

	service := NewPredictionService(&PredictionServiceDeps{DB: db})
	event := seedOpenEvent(t, db)

	_, err := service.Submit(100, event.ID, []uint{1, 2, 3})
	require.NoError(t, err)

	db.Model(&models.Event{}).Where("id = ?", event.ID).Update("status", models.EventLive)

	_, err = service.Edit(100, event.ID, []uint{3, 2, 1})
	assert.Equal(t, apperror.KindState, apperror.KindOf(err))
}

// seedOpenEvent creates an open three slot event with a matching roster and
// one registered participant.
func seedOpenEvent(t *testing.T, db *gorm.DB) *models.Event {
	t.Helper()

	competitors := []models.Competitor{
		{ID: 1, FullName: "Competitor A"},
		{ID: 2, FullName: "Competitor B"},
		{ID: 3, FullName: "Competitor C"},
	}
	if err := db.Create(&competitors).Error; err != nil {
		t.Fatalf("Failed to seed the competitors: %v", err)
	}

	if err := db.Create(&models.Participant{ID: 100, Username: "alice"}).Error; err != nil {
		t.Fatalf("Failed to seed the participant: %v", err)
	}

	event := &models.Event{
		Name:      "Spring Open",
		Date:      time.Date(2025, time.April, 7, 18, 0, 0, 0, time.UTC),
		SlotCount: 3,
		Status:    models.EventOpen,
		Roster:    competitors,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("Failed to seed the event: %v", err)
	}
	return event
}
