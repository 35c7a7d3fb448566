package repositories

import (
	"errors"
	"rankcast/pkg/database/models"

	"gorm.io/gorm"
)

// Public Interface.
type EventRepository interface {
	AddCompetitor(event *models.Event, competitorID uint) error
	Create(event *models.Event) error
	Delete(id uint) error
	GetByID(id uint) (*models.Event, error)
	GetWithRoster(id uint) (*models.Event, error)
	ListAll() ([]models.Event, error)
	ListByStatus(status models.EventStatus) ([]models.Event, error)
	ListNonDraftChronological() ([]models.Event, error)
	RemoveCompetitor(event *models.Event, competitorID uint) error
	TransitionStatus(id uint, from, to models.EventStatus) (bool, error)
}

// Event repository structure.
type eventRepository struct {
	db *gorm.DB
}

// Create an event repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// Create the event into the database.
func (er *eventRepository) Create(event *models.Event) error {
	return er.db.Create(event).Error
}

// Get a given event by its id. Returns nil without error when missing.
func (er *eventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := er.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// Get a given event with its roster preloaded.
func (er *eventRepository) GetWithRoster(id uint) (*models.Event, error) {
	var event models.Event
	if err := er.db.Preload("Roster").First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// List every event, oldest first.
func (er *eventRepository) ListAll() ([]models.Event, error) {
	var events []models.Event
	if err := er.db.Order("date ASC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// List the events on a given status, oldest first.
func (er *eventRepository) ListByStatus(status models.EventStatus) ([]models.Event, error) {
	var events []models.Event
	if err := er.db.Where("status = ?", status).Order("date ASC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// List every published event in the chronological order the streak
// calculator replays them in.
func (er *eventRepository) ListNonDraftChronological() ([]models.Event, error) {
	var events []models.Event
	err := er.db.Where("status <> ?", models.EventDraft).
		Order("date ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// TransitionStatus moves an event between statuses only when it still is on
// the expected one. Returns whether the transition happened, so a concurrent
// second attempt observes false instead of overwriting.
func (er *eventRepository) TransitionStatus(id uint, from, to models.EventStatus) (bool, error) {
	result := er.db.Model(&models.Event{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Add a competitor to the event roster.
func (er *eventRepository) AddCompetitor(event *models.Event, competitorID uint) error {
	var competitor models.Competitor
	if err := er.db.First(&competitor, competitorID).Error; err != nil {
		return err
	}
	return er.db.Model(event).Association("Roster").Append(&competitor)
}

// Remove a competitor from the event roster.
func (er *eventRepository) RemoveCompetitor(event *models.Event, competitorID uint) error {
	return er.db.Model(event).Association("Roster").Delete(&models.Competitor{ID: competitorID})
}

// Delete an event and everything hanging off it. Irreversible.
func (er *eventRepository) Delete(id uint) error {
	return er.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.Prediction{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM event_competitors WHERE event_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, id).Error
	})
}
