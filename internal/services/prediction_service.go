package services

import (
	"context"

	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/insights"
	"finadvisor/internal/reports"
)

// predictionService forecasts next month's spend from recent monthly totals.
type predictionService struct {
	reports *reports.Store
}

// NewPredictionService creates a new PredictionServicer.
func NewPredictionService(reports *reports.Store) PredictionServicer {
	return &predictionService{reports: reports}
}

// GetForecast returns the actual and predicted series over the user's most
// recent spending months together with the next month's prediction.
func (s *predictionService) GetForecast(ctx context.Context, userID uint) (*insights.Forecast, error) {
	totals, err := s.reports.RecentMonthlyTotals(ctx, userID, insights.ForecastWindow)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	forecast := insights.ForecastNextMonth(totals)
	return &forecast, nil
}
