package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/tourist-safety-go/internal/models"
	"github.com/jengzang/tourist-safety-go/internal/scoring"
	"github.com/jengzang/tourist-safety-go/pkg/response"
)

// PredictHandler handles HTTP requests for the AI prediction service
type PredictHandler struct {
	scorer *scoring.Service
}

// NewPredictHandler creates a new prediction handler
func NewPredictHandler(scorer *scoring.Service) *PredictHandler {
	return &PredictHandler{scorer: scorer}
}

// PredictRequest is the body of POST /predict: a raw GPS trail
type PredictRequest struct {
	Path []models.TrailPoint `json:"path"`
}

// Predict handles POST /predict
func (h *PredictHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Path == nil {
		response.BadRequest(c, "Invalid input: 'path' key is missing.")
		return
	}

	for _, p := range req.Path {
		if err := p.Valid(); err != nil {
			response.BadRequest(c, "Invalid path point: "+err.Error())
			return
		}
	}

	verdict, err := h.scorer.ScoreTrail(c.Request.Context(), req.Path)
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrInvalidInput):
			response.BadRequest(c, "Invalid input: 'path' key is missing.")
		case errors.Is(err, scoring.ErrScoringTimeout):
			response.InternalError(c, "Model scoring timed out.")
		case errors.Is(err, scoring.ErrModelUnavailable):
			response.InternalError(c, "Model not loaded. Check server logs.")
		default:
			response.InternalError(c, "Internal server error")
		}
		return
	}

	c.JSON(200, verdict)
}

// Home handles GET /, the liveness page
func (h *PredictHandler) Home(c *gin.Context) {
	c.String(200, "Smart Tourist Safety - AI Server is Running!")
}
