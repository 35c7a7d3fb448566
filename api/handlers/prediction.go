package handlers

import (
	"net/http"
	"rankcast/api/dto"
	predictionservice "rankcast/api/services/prediction"

	"github.com/gin-gonic/gin"
)

// Prediction handler.
type PredictionHandler struct {
	predictionService *predictionservice.PredictionService
}

type PredictionHandlerDependencies struct {
	PredictionService *predictionservice.PredictionService
}

// Create a new instance of the prediction handler.
func NewPredictionHandler(deps *PredictionHandlerDependencies) *PredictionHandler {
	return &PredictionHandler{
		predictionService: deps.PredictionService,
	}
}

// SubmitPrediction handles a first submission for an open event.
func (h *PredictionHandler) SubmitPrediction(c *gin.Context) {
	eventID, req, ok := h.bindSubmission(c)
	if !ok {
		return
	}

	prediction, err := h.predictionService.Submit(req.ParticipantID, eventID, req.Picks)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": (&dto.PredictionResponse{}).FromModel(prediction)})
}

// EditPrediction handles the replacement of an existing submission.
func (h *PredictionHandler) EditPrediction(c *gin.Context) {
	eventID, req, ok := h.bindSubmission(c)
	if !ok {
		return
	}

	prediction, err := h.predictionService.Edit(req.ParticipantID, eventID, req.Picks)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": (&dto.PredictionResponse{}).FromModel(prediction)})
}

// ListPredictions handles the fetch of every submission of an event.
func (h *PredictionHandler) ListPredictions(c *gin.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	predictions, err := h.predictionService.ListByEvent(eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]*dto.PredictionResponse, 0, len(predictions))
	for i := range predictions {
		responses = append(responses, (&dto.PredictionResponse{}).FromModel(&predictions[i]))
	}

	c.JSON(http.StatusOK, gin.H{"result": responses})
}

// GetPrediction handles the fetch of one participant's submission.
func (h *PredictionHandler) GetPrediction(c *gin.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}
	participantID, ok := pathID(c, "participantId")
	if !ok {
		return
	}

	prediction, err := h.predictionService.Get(participantID, eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": (&dto.PredictionResponse{}).FromModel(prediction)})
}

// bindSubmission parses the shared path and body of submit and edit.
func (h *PredictionHandler) bindSubmission(c *gin.Context) (uint, *dto.SubmitPredictionRequest, bool) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return 0, nil, false
	}

	var req dto.SubmitPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, nil, false
	}

	return eventID, &req, true
}
