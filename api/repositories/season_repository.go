package repositories

import (
	"errors"
	"rankcast/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeasonStanding is one participant's aggregate inside a season window,
// produced by the archival grouping query.
type SeasonStanding struct {
	ParticipantID uint
	Username      string
	FullName      string
	Points        int
	EventsPlayed  int
}

// Public Interface.
type SeasonRepository interface {
	AggregateStandings(eventIDs []uint) ([]SeasonStanding, error)
	Create(season *models.Season) error
	CreateResults(results []models.SeasonResult) error
	GetByNumber(number int) (*models.Season, error)
	HasResults(seasonID uint) (bool, error)
	LeaderboardByNumber(number int) ([]models.SeasonResult, error)
}

// Season repository structure.
type seasonRepository struct {
	db *gorm.DB
}

// Create a season repository.
func NewSeasonRepository(db *gorm.DB) SeasonRepository {
	return &seasonRepository{db: db}
}

// Get a season by its sequential number. Returns nil without error when the
// season was never materialized.
func (sr *seasonRepository) GetByNumber(number int) (*models.Season, error) {
	var season models.Season
	if err := sr.db.Where("number = ?", number).First(&season).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &season, nil
}

// Create the season into the database.
func (sr *seasonRepository) Create(season *models.Season) error {
	return sr.db.Create(season).Error
}

// HasResults tells whether a season was already archived. Existing rows are
// the idempotency guard for the whole rotation.
func (sr *seasonRepository) HasResults(seasonID uint) (bool, error) {
	var count int64
	err := sr.db.Model(&models.SeasonResult{}).
		Where("season_id = ?", seasonID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AggregateStandings sums the scored predictions of the given events per
// participant. Ordered by points descending, participant id breaking ties
// deterministically.
func (sr *seasonRepository) AggregateStandings(eventIDs []uint) ([]SeasonStanding, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	var standings []SeasonStanding
	err := sr.db.Raw(`
		SELECT
			p.participant_id,
			u.username,
			u.full_name,
			SUM(COALESCE(p.points_earned, 0)) AS points,
			COUNT(p.id) AS events_played
		FROM predictions p
		JOIN participants u ON u.id = p.participant_id
		WHERE p.event_id IN ? AND p.points_earned IS NOT NULL
		GROUP BY p.participant_id, u.username, u.full_name
		ORDER BY points DESC, p.participant_id ASC`, eventIDs).
		Scan(&standings).Error
	if err != nil {
		return nil, err
	}
	return standings, nil
}

// CreateResults writes the archival rows. A conflicting row means another
// run already archived the pair, which is fine.
func (sr *seasonRepository) CreateResults(results []models.SeasonResult) error {
	if len(results) == 0 {
		return nil
	}
	return sr.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&results).Error
}

// LeaderboardByNumber returns the archived rows of a season, best rank first.
func (sr *seasonRepository) LeaderboardByNumber(number int) ([]models.SeasonResult, error) {
	var results []models.SeasonResult
	err := sr.db.Model(&models.SeasonResult{}).
		Joins("JOIN seasons ON seasons.id = season_results.season_id").
		Where("seasons.number = ?", number).
		Order("season_results.rank ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
