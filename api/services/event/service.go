package eventservice

import (
	"context"
	"errors"
	"log"
	"rankcast/api/cache"
	"rankcast/api/dto"
	"rankcast/api/repositories"
	"rankcast/pkg/apperror"
	"rankcast/pkg/database/models"
	"rankcast/pkg/messages"
	"rankcast/pkg/notifier"
	"rankcast/pkg/redis"
	"rankcast/pkg/scoring"
	"sort"
	"time"

	"gorm.io/gorm"
)

// Notifier delivers the finalize fact after the transaction committed.
// Delivery failures never surface to the operator.
type Notifier interface {
	PublishFinalizeCompleted(ctx context.Context, fact notifier.FinalizeCompleted) error
}

// Event service with the repository and post-commit collaborators.
type EventService struct {
	db              *gorm.DB
	memCache        *cache.MemCache
	redis           *redis.RedisClient
	notifier        Notifier
	EventRepository repositories.EventRepository
}

// EventServiceDeps is the dependency list for the event service.
type EventServiceDeps struct {
	DB       *gorm.DB
	MemCache *cache.MemCache
	Redis    *redis.RedisClient
	Notifier Notifier
}

// NewEventService creates an event service.
func NewEventService(deps *EventServiceDeps) *EventService {
	return &EventService{
		db:              deps.DB,
		memCache:        deps.MemCache,
		redis:           deps.Redis,
		notifier:        deps.Notifier,
		EventRepository: repositories.NewEventRepository(deps.DB),
	}
}

// Create registers a new draft event.
func (s *EventService) Create(name string, date time.Time, slotCount int) (*models.Event, error) {
	if name == "" {
		return nil, apperror.Validation("event name can't be empty")
	}
	if slotCount < 1 {
		return nil, apperror.Validation(messages.InvalidSlotCount)
	}

	event := &models.Event{
		Name:      name,
		Date:      date,
		SlotCount: slotCount,
		Status:    models.EventDraft,
	}
	if err := s.EventRepository.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Get returns an event with its roster.
func (s *EventService) Get(id uint) (*models.Event, error) {
	event, err := s.EventRepository.GetWithRoster(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NotFound(messages.EventNotFound)
	}
	return event, nil
}

// List returns every event, optionally filtered by status.
func (s *EventService) List(status models.EventStatus) ([]models.Event, error) {
	if status == "" {
		return s.EventRepository.ListAll()
	}
	return s.EventRepository.ListByStatus(status)
}

// Publish opens a draft event for predictions. The roster must be able to
// fill every slot, otherwise the outcome could never be entered.
func (s *EventService) Publish(id uint) error {
	event, err := s.EventRepository.GetWithRoster(id)
	if err != nil {
		return err
	}
	if event == nil {
		return apperror.NotFound(messages.EventNotFound)
	}
	if event.Status != models.EventDraft {
		return apperror.State(messages.WrongStatusTransition, "publish", event.Status)
	}
	if len(event.Roster) < event.SlotCount {
		return apperror.Validation(messages.RosterTooSmall, len(event.Roster), event.SlotCount)
	}

	return s.transition(id, "publish", models.EventDraft, models.EventOpen)
}

// Lock closes an open event for predictions.
func (s *EventService) Lock(id uint) error {
	return s.guardedTransition(id, "lock", models.EventOpen, models.EventLive)
}

// Reopen reverts a locked event back to accepting predictions, to correct
// roster or timing mistakes before any result is entered.
func (s *EventService) Reopen(id uint) error {
	return s.guardedTransition(id, "reopen", models.EventLive, models.EventOpen)
}

// AddCompetitor puts a competitor on the event roster.
func (s *EventService) AddCompetitor(eventID, competitorID uint) error {
	event, err := s.rosterMutableEvent(eventID)
	if err != nil {
		return err
	}
	if err := s.EventRepository.AddCompetitor(event, competitorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound(messages.CompetitorNotFound)
		}
		return err
	}
	return nil
}

// RemoveCompetitor takes a competitor off the event roster.
func (s *EventService) RemoveCompetitor(eventID, competitorID uint) error {
	event, err := s.rosterMutableEvent(eventID)
	if err != nil {
		return err
	}
	return s.EventRepository.RemoveCompetitor(event, competitorID)
}

// Delete removes an event and cascades to its predictions. Irreversible.
func (s *EventService) Delete(id uint) error {
	event, err := s.EventRepository.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return apperror.NotFound(messages.EventNotFound)
	}
	return s.EventRepository.Delete(id)
}

// Finalize enters the real outcome of a live event and scores every
// prediction against it in one transaction. Either the event flips to
// finished with every prediction scored and every participant's running
// totals advanced, or nothing changes and the operator retries.
func (s *EventService) Finalize(ctx context.Context, id uint, outcome []uint) (*dto.FinalizeSummary, error) {
	var event models.Event
	var predictions []models.Prediction
	exactHitsByPrediction := make(map[uint]int)

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound(messages.EventNotFound)
			}
			return err
		}
		if event.Status != models.EventLive {
			return apperror.State(messages.WrongStatusTransition, "finalize", event.Status)
		}
		if len(outcome) != event.SlotCount {
			return apperror.Validation(messages.OutcomeLengthMismatch, event.SlotCount, len(outcome))
		}

		// Convert the ordered outcome into the rank map stored on the event.
		results := make(map[uint]int, len(outcome))
		for position, competitorID := range outcome {
			if _, duplicated := results[competitorID]; duplicated {
				return apperror.Validation(messages.DuplicateCompetitor, competitorID)
			}
			results[competitorID] = position + 1
		}

		// Irreversible from here on. The flip re-checks the status so a
		// concurrent transition between the read and the update loses the
		// race instead of being overwritten.
		flip := tx.Model(&models.Event{}).
			Where("id = ? AND status = ?", id, models.EventLive).
			Select("status", "results").
			Updates(models.Event{Status: models.EventFinished, Results: results})
		if flip.Error != nil {
			return flip.Error
		}
		if flip.RowsAffected == 0 {
			return apperror.State(messages.WrongStatusTransition, "finalize", "changed concurrently")
		}
		event.Status = models.EventFinished
		event.Results = results

		err := tx.Preload("Participant").
			Where("event_id = ?", id).
			Order("created_at ASC, id ASC").
			Find(&predictions).Error
		if err != nil {
			return err
		}

		for i := range predictions {
			prediction := &predictions[i]

			points, diffs, exactHits := scoring.ScorePrediction(prediction.Picks, results)

			earned := points
			err := tx.Model(&models.Prediction{}).
				Where("id = ?", prediction.ID).
				Update("points_earned", earned).Error
			if err != nil {
				return err
			}
			prediction.PointsEarned = &earned
			exactHitsByPrediction[prediction.ID] = exactHits

			participant := prediction.Participant
			totals := scoring.ApplyForecast(scoring.Totals{
				TotalPoints:  participant.TotalPoints,
				AccuracyRate: participant.AccuracyRate,
				AvgError:     participant.AvgError,
				TotalSlots:   participant.TotalSlots,
			}, points, diffs, exactHits)

			participant.TotalPoints = totals.TotalPoints
			participant.AccuracyRate = totals.AccuracyRate
			participant.AvgError = totals.AvgError
			participant.TotalSlots = totals.TotalSlots
			participant.EventsPlayed++
			participant.ExactGuesses += exactHits
			if exactHits == event.SlotCount && event.SlotCount > 0 {
				participant.PerfectEvents++
			}

			if err := tx.Save(&participant).Error; err != nil {
				return err
			}
			prediction.Participant = participant
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	summary := s.buildSummary(&event, predictions)

	// The transaction is committed. Everything below is best-effort.
	s.invalidateLeaderboards(ctx)
	s.publishFinalizeFact(ctx, &event, predictions, exactHitsByPrediction)

	return summary, nil
}

// buildSummary ranks the scored predictions for the operator message.
// Points descending; the earlier submission wins a tie.
func (s *EventService) buildSummary(event *models.Event, predictions []models.Prediction) *dto.FinalizeSummary {
	ranked := make([]models.Prediction, len(predictions))
	copy(ranked, predictions)

	// The input is already ordered by submission time, so a stable sort on
	// points alone preserves the tie-break.
	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].PointsEarned > *ranked[j].PointsEarned
	})

	summary := &dto.FinalizeSummary{
		EventID:   event.ID,
		EventName: event.Name,
		Processed: len(ranked),
	}
	for i := range ranked {
		summary.Standings = append(summary.Standings, dto.FinalizeStanding{
			Position:      i + 1,
			ParticipantID: ranked[i].ParticipantID,
			Username:      ranked[i].Participant.Username,
			Points:        *ranked[i].PointsEarned,
		})
	}
	return summary
}

// publishFinalizeFact emits the post-commit fact for the chat shell.
func (s *EventService) publishFinalizeFact(ctx context.Context, event *models.Event, predictions []models.Prediction, exactHits map[uint]int) {
	if s.notifier == nil {
		return
	}

	fact := notifier.FinalizeCompleted{
		EventID:   event.ID,
		EventName: event.Name,
		EventDate: event.Date,
		Results:   event.Results,
	}
	for i := range predictions {
		fact.Standings = append(fact.Standings, notifier.ParticipantResult{
			ParticipantID: predictions[i].ParticipantID,
			Username:      predictions[i].Participant.Username,
			FullName:      predictions[i].Participant.FullName,
			Points:        *predictions[i].PointsEarned,
			ExactHits:     exactHits[predictions[i].ID],
		})
	}

	if err := s.notifier.PublishFinalizeCompleted(ctx, fact); err != nil {
		log.Printf("Failed to publish the finalize fact for event %d: %v", event.ID, err)
	}
}

// invalidateLeaderboards drops the lifetime leaderboard from both cache
// tiers after the totals moved.
func (s *EventService) invalidateLeaderboards(ctx context.Context) {
	if s.memCache != nil {
		s.memCache.Delete(cache.LifetimeLeaderboardKey)
	}
	if s.redis != nil {
		if err := s.redis.Delete(ctx, cache.LifetimeLeaderboardKey); err != nil {
			log.Printf("Failed to invalidate the lifetime leaderboard cache: %v", err)
		}
	}
}

// rosterMutableEvent loads an event and checks its roster can still change.
func (s *EventService) rosterMutableEvent(eventID uint) (*models.Event, error) {
	event, err := s.EventRepository.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NotFound(messages.EventNotFound)
	}
	if event.Status != models.EventDraft && event.Status != models.EventOpen {
		return nil, apperror.State(messages.RosterLocked)
	}
	return event, nil
}

// guardedTransition loads the event for a friendly status error, then runs
// the compare-and-swap transition.
func (s *EventService) guardedTransition(id uint, action string, from, to models.EventStatus) error {
	event, err := s.EventRepository.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return apperror.NotFound(messages.EventNotFound)
	}
	if event.Status != from {
		return apperror.State(messages.WrongStatusTransition, action, event.Status)
	}
	return s.transition(id, action, from, to)
}

// transition runs the compare-and-swap status update. A lost race surfaces
// as a state error, never as a silent overwrite.
func (s *EventService) transition(id uint, action string, from, to models.EventStatus) error {
	moved, err := s.EventRepository.TransitionStatus(id, from, to)
	if err != nil {
		return err
	}
	if !moved {
		return apperror.State(messages.WrongStatusTransition, action, "changed concurrently")
	}
	return nil
}
