package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/insights"
	"finadvisor/internal/models"
	"finadvisor/internal/reports"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db      *gorm.DB
	reports *reports.Store
	now     func() time.Time
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, reports *reports.Store) BudgetServicer {
	return &budgetService{db: db, reports: reports, now: time.Now}
}

// SetBudget sets the user's budget for the current month, replacing any
// amount already set for it.
func (s *budgetService) SetBudget(ctx context.Context, userID uint, amount decimal.Decimal) (*models.Budget, error) {
	if amount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid amount")
	}

	db := s.db.WithContext(ctx)
	month := models.MonthKey(s.now())

	budget := &models.Budget{
		UserID:    userID,
		Amount:    amount,
		MonthYear: month,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month_year"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "created_at"}),
	}).Create(budget).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var stored models.Budget
	if err := db.Where("user_id = ? AND month_year = ?", userID, month).First(&stored).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stored, nil
}

// GetBudgetOverview summarises the current month and lists the previous
// months that have a budget or any spend.
func (s *budgetService) GetBudgetOverview(ctx context.Context, userID uint) (*BudgetOverview, error) {
	now := s.now()
	month := models.MonthKey(now)

	current, err := s.reports.BudgetsForMonths(ctx, userID, []string{month})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	spent, err := s.reports.SpentInMonth(ctx, userID, month)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := insights.ComputeMonthSummary(current[month], spent, now, insights.DaysIn(now.Year(), now.Month()))

	months := insights.RecentMonths(now, insights.PreviousMonths)
	budgets, err := s.reports.BudgetsForMonths(ctx, userID, months)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	spends, err := s.reports.SpentByMonths(ctx, userID, months)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	previous := make([]MonthBudget, 0, len(months))
	for _, m := range months {
		amount, hasBudget := budgets[m]
		monthSpent, hasSpend := spends[m]
		if !hasBudget && !hasSpend {
			continue
		}
		previous = append(previous, MonthBudget{
			MonthYear: m,
			Amount:    amount.Round(2),
			Spent:     monthSpent.Round(2),
		})
	}

	return &BudgetOverview{
		Current: CurrentBudget{
			MonthYear:     month,
			Amount:        summary.Budget.Round(2),
			Spent:         summary.Spent.Round(2),
			Remaining:     summary.Remaining,
			RemainingDays: summary.RemainingDays,
			Note:          summary.Note,
		},
		Previous: previous,
	}, nil
}
