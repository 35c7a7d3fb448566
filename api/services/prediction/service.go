package predictionservice

import (
	"rankcast/api/repositories"
	"rankcast/pkg/apperror"
	"rankcast/pkg/database/models"
	"rankcast/pkg/messages"

	"gorm.io/gorm"
)

// Prediction service with the repositories it validates against.
type PredictionService struct {
	db                    *gorm.DB
	EventRepository       repositories.EventRepository
	ParticipantRepository repositories.ParticipantRepository
	PredictionRepository  repositories.PredictionRepository
}

// PredictionServiceDeps is the dependency list for the prediction service.
type PredictionServiceDeps struct {
	DB *gorm.DB
}

// NewPredictionService creates a prediction service.
func NewPredictionService(deps *PredictionServiceDeps) *PredictionService {
	return &PredictionService{
		db:                    deps.DB,
		EventRepository:       repositories.NewEventRepository(deps.DB),
		ParticipantRepository: repositories.NewParticipantRepository(deps.DB),
		PredictionRepository:  repositories.NewPredictionRepository(deps.DB),
	}
}

// Submit stores a participant's first prediction for an open event.
func (s *PredictionService) Submit(participantID, eventID uint, picks []uint) (*models.Prediction, error) {
	if err := s.validate(participantID, eventID, picks); err != nil {
		return nil, err
	}

	existing, err := s.PredictionRepository.GetByParticipantAndEvent(participantID, eventID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Validation(messages.PredictionExists)
	}

	prediction := &models.Prediction{
		ParticipantID: participantID,
		EventID:       eventID,
		Picks:         picks,
	}
	if err := s.PredictionRepository.Create(prediction); err != nil {
		return nil, err
	}
	return prediction, nil
}

// Edit replaces an existing prediction while the event is still open.
// The swap is atomic so no reader ever sees the participant forecast-less.
func (s *PredictionService) Edit(participantID, eventID uint, picks []uint) (*models.Prediction, error) {
	if err := s.validate(participantID, eventID, picks); err != nil {
		return nil, err
	}

	existing, err := s.PredictionRepository.GetByParticipantAndEvent(participantID, eventID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound(messages.PredictionNotFound)
	}

	replacement := &models.Prediction{
		ParticipantID: participantID,
		EventID:       eventID,
		Picks:         picks,
	}
	if err := s.PredictionRepository.Replace(existing.ID, replacement); err != nil {
		return nil, err
	}
	return replacement, nil
}

// ListByEvent returns every submission of an event, earliest first.
func (s *PredictionService) ListByEvent(eventID uint) ([]models.Prediction, error) {
	event, err := s.EventRepository.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NotFound(messages.EventNotFound)
	}
	return s.PredictionRepository.ListByEventWithParticipants(eventID)
}

// Get returns the participant's prediction for an event.
func (s *PredictionService) Get(participantID, eventID uint) (*models.Prediction, error) {
	prediction, err := s.PredictionRepository.GetByParticipantAndEvent(participantID, eventID)
	if err != nil {
		return nil, err
	}
	if prediction == nil {
		return nil, apperror.NotFound(messages.PredictionNotFound)
	}
	return prediction, nil
}

// validate runs every synchronous rejection of a submission: the event must
// exist and be open, the participant registered, and the picks must fill
// every slot with distinct roster members.
func (s *PredictionService) validate(participantID, eventID uint, picks []uint) error {
	event, err := s.EventRepository.GetWithRoster(eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return apperror.NotFound(messages.EventNotFound)
	}
	if event.Status != models.EventOpen {
		return apperror.State(messages.PredictionsClosed, event.Status)
	}

	participant, err := s.ParticipantRepository.GetByID(participantID)
	if err != nil {
		return err
	}
	if participant == nil {
		return apperror.NotFound(messages.ParticipantNotFound)
	}

	if len(picks) != event.SlotCount {
		return apperror.Validation(messages.PickCountMismatch, event.SlotCount, len(picks))
	}

	roster := make(map[uint]bool, len(event.Roster))
	for _, competitor := range event.Roster {
		roster[competitor.ID] = true
	}

	seen := make(map[uint]bool, len(picks))
	for _, competitorID := range picks {
		if seen[competitorID] {
			return apperror.Validation(messages.DuplicateCompetitor, competitorID)
		}
		seen[competitorID] = true

		if !roster[competitorID] {
			return apperror.Validation(messages.CompetitorNotInRoster, competitorID)
		}
	}

	return nil
}
