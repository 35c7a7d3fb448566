package repositories

import (
	"errors"
	"rankcast/pkg/database/models"

	"gorm.io/gorm"
)

// Public Interface.
type ParticipantRepository interface {
	GetByID(id uint) (*models.Participant, error)
	GlobalRank(totalPoints int) (int, error)
	ListLeaderboard(limit int) ([]models.Participant, error)
	UpdateStreaks(id uint, current, max int) error
}

// Participant repository structure.
type participantRepository struct {
	db *gorm.DB
}

// Create a participant repository.
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

// Get a given participant by its id. Returns nil without error when missing.
func (pr *participantRepository) GetByID(id uint) (*models.Participant, error) {
	var participant models.Participant
	if err := pr.db.First(&participant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

// GlobalRank returns the 1-based lifetime position of a point total.
// Equal totals share the same rank.
func (pr *participantRepository) GlobalRank(totalPoints int) (int, error) {
	var ahead int64
	err := pr.db.Model(&models.Participant{}).
		Where("total_points > ?", totalPoints).
		Count(&ahead).Error
	if err != nil {
		return 0, err
	}
	return int(ahead) + 1, nil
}

// List the lifetime leaderboard, best first.
func (pr *participantRepository) ListLeaderboard(limit int) ([]models.Participant, error) {
	var participants []models.Participant
	err := pr.db.Order("total_points DESC, id ASC").
		Limit(limit).
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

// UpdateStreaks refreshes the cached streak counters.
func (pr *participantRepository) UpdateStreaks(id uint, current, max int) error {
	return pr.db.Model(&models.Participant{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"current_streak": current,
			"max_streak":     max,
		}).Error
}
