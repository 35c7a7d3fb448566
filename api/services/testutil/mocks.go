package testutil

import (
	"context"
	"rankcast/pkg/database/models"
	"rankcast/pkg/notifier"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

const DatabaseError = "database error occurred"

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Repository mock implementations.
// ============================================================================

// Event repository mock implementation.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) AddCompetitor(event *models.Event, competitorID uint) error {
	args := m.Called(event, competitorID)
	return args.Error(0)
}

func (m *MockEventRepository) Create(event *models.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockEventRepository) GetByID(id uint) (*models.Event, error) {
	args := m.Called(id)
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepository) GetWithRoster(id uint) (*models.Event, error) {
	args := m.Called(id)
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepository) ListAll() ([]models.Event, error) {
	args := m.Called()
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventRepository) ListByStatus(status models.EventStatus) ([]models.Event, error) {
	args := m.Called(status)
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventRepository) ListNonDraftChronological() ([]models.Event, error) {
	args := m.Called()
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockEventRepository) RemoveCompetitor(event *models.Event, competitorID uint) error {
	args := m.Called(event, competitorID)
	return args.Error(0)
}

func (m *MockEventRepository) TransitionStatus(id uint, from, to models.EventStatus) (bool, error) {
	args := m.Called(id, from, to)
	return args.Bool(0), args.Error(1)
}

// Participant repository mock implementation.
type MockParticipantRepository struct {
	mock.Mock
}

func (m *MockParticipantRepository) GetByID(id uint) (*models.Participant, error) {
	args := m.Called(id)
	return args.Get(0).(*models.Participant), args.Error(1)
}

func (m *MockParticipantRepository) GlobalRank(totalPoints int) (int, error) {
	args := m.Called(totalPoints)
	return args.Int(0), args.Error(1)
}

func (m *MockParticipantRepository) ListLeaderboard(limit int) ([]models.Participant, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.Participant), args.Error(1)
}

func (m *MockParticipantRepository) UpdateStreaks(id uint, current, max int) error {
	args := m.Called(id, current, max)
	return args.Error(0)
}

// Prediction repository mock implementation.
type MockPredictionRepository struct {
	mock.Mock
}

func (m *MockPredictionRepository) Create(prediction *models.Prediction) error {
	args := m.Called(prediction)
	return args.Error(0)
}

func (m *MockPredictionRepository) GetByParticipantAndEvent(participantID, eventID uint) (*models.Prediction, error) {
	args := m.Called(participantID, eventID)
	return args.Get(0).(*models.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) ListByEventWithParticipants(eventID uint) ([]models.Prediction, error) {
	args := m.Called(eventID)
	return args.Get(0).([]models.Prediction), args.Error(1)
}

func (m *MockPredictionRepository) ListEventIDsByParticipant(participantID uint) ([]uint, error) {
	args := m.Called(participantID)
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockPredictionRepository) Replace(oldID uint, replacement *models.Prediction) error {
	args := m.Called(oldID, replacement)
	return args.Error(0)
}

// Season repository mock is intentionally absent: the season service is
// exercised against the real repositories on the in-memory database.

// ============================================================================
// Infrastructure mock implementations.
// ============================================================================

// Redis client mock implementation.
type MockRedisClient struct {
	mock.Mock
}

func (m *MockRedisClient) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(string), args.Error(1)
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// Notifier mock implementation.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PublishFinalizeCompleted(ctx context.Context, fact notifier.FinalizeCompleted) error {
	args := m.Called(ctx, fact)
	return args.Error(0)
}
