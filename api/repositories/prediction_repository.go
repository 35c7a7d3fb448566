package repositories

import (
	"errors"
	"rankcast/pkg/database/models"

	"gorm.io/gorm"
)

// Public Interface.
type PredictionRepository interface {
	Create(prediction *models.Prediction) error
	GetByParticipantAndEvent(participantID, eventID uint) (*models.Prediction, error)
	ListByEventWithParticipants(eventID uint) ([]models.Prediction, error)
	ListEventIDsByParticipant(participantID uint) ([]uint, error)
	Replace(oldID uint, replacement *models.Prediction) error
}

// Prediction repository structure.
type predictionRepository struct {
	db *gorm.DB
}

// Create a prediction repository.
func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

// Create the prediction into the database.
func (pr *predictionRepository) Create(prediction *models.Prediction) error {
	return pr.db.Create(prediction).Error
}

// Get the prediction of a participant for an event. Returns nil without
// error when the participant has not submitted one.
func (pr *predictionRepository) GetByParticipantAndEvent(participantID, eventID uint) (*models.Prediction, error) {
	var prediction models.Prediction
	err := pr.db.Where("participant_id = ? AND event_id = ?", participantID, eventID).
		First(&prediction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prediction, nil
}

// List every prediction of an event with the owning participants preloaded,
// earliest submission first.
func (pr *predictionRepository) ListByEventWithParticipants(eventID uint) ([]models.Prediction, error) {
	var predictions []models.Prediction
	err := pr.db.Preload("Participant").
		Where("event_id = ?", eventID).
		Order("created_at ASC, id ASC").
		Find(&predictions).Error
	if err != nil {
		return nil, err
	}
	return predictions, nil
}

// List the ids of every event a participant submitted a prediction for.
func (pr *predictionRepository) ListEventIDsByParticipant(participantID uint) ([]uint, error) {
	var eventIDs []uint
	err := pr.db.Model(&models.Prediction{}).
		Where("participant_id = ?", participantID).
		Pluck("event_id", &eventIDs).Error
	if err != nil {
		return nil, err
	}
	return eventIDs, nil
}

// Replace swaps a prediction for its edited version atomically, so no reader
// ever observes the participant without a forecast in between.
func (pr *predictionRepository) Replace(oldID uint, replacement *models.Prediction) error {
	return pr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Prediction{}, oldID).Error; err != nil {
			return err
		}
		return tx.Create(replacement).Error
	})
}
