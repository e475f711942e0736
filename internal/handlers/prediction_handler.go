package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/insights"
	"finadvisor/internal/services"
)

// HealthMessage is the body served at the root path.
const HealthMessage = "Finance Advisor Backend Running ✅"

// PredictionHandler handles the expense forecast
type PredictionHandler struct {
	predictionService services.PredictionServicer
}

// NewPredictionHandler creates a new PredictionHandler
func NewPredictionHandler(predictionService services.PredictionServicer) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// PredictionResponse represents the forecast payload
type PredictionResponse struct {
	Status string `json:"status" example:"success"`
	insights.Forecast
}

// GetPredictions forecasts next month's spend
// @Summary     Expense forecast
// @Description Actual spend for up to six recent months, the shifted prediction series and next month's prediction.
// @Tags        predictions
// @Produce     json
// @Param       user_id query int true "User ID"
// @Success     200 {object} PredictionResponse "Forecast"
// @Failure     400 {object} ErrorResponse "Missing user_id"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /predictions [get]
func (h *PredictionHandler) GetPredictions(c *gin.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "user_id required"))
		return
	}

	forecast, err := h.predictionService.GetForecast(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondOK(c, gin.H{
		"labels":    forecast.Labels,
		"actual":    forecast.Actual,
		"predicted": forecast.Predicted,
		"next_pred": forecast.NextPred,
	})
}

// Health reports that the server is up
// @Summary     Health check
// @Tags        health
// @Produce     plain
// @Success     200 {string} string "Running"
// @Router      / [get]
func Health(c *gin.Context) {
	c.String(http.StatusOK, HealthMessage)
}
