package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"finadvisor/internal/insights"
	"finadvisor/internal/models"
	"finadvisor/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, name, email, password string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// MonthBudget is one previous month in the budget overview.
type MonthBudget struct {
	MonthYear string          `json:"month_year"`
	Amount    decimal.Decimal `json:"amount"`
	Spent     decimal.Decimal `json:"spent"`
}

// CurrentBudget is the current month's budget summary.
type CurrentBudget struct {
	MonthYear     string          `json:"month_year"`
	Amount        decimal.Decimal `json:"amount"`
	Spent         decimal.Decimal `json:"spent"`
	Remaining     decimal.Decimal `json:"remaining"`
	RemainingDays int             `json:"remaining_days"`
	Note          string          `json:"note"`
}

// BudgetOverview is the current month summary plus the previous months that
// have a budget or any spend, most recent first.
type BudgetOverview struct {
	Current  CurrentBudget `json:"current"`
	Previous []MonthBudget `json:"previous"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	SetBudget(ctx context.Context, userID uint, amount decimal.Decimal) (*models.Budget, error)
	GetBudgetOverview(ctx context.Context, userID uint) (*BudgetOverview, error)
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, userID uint, category string, amount decimal.Decimal, txType models.TransactionType, date time.Time) (*models.Transaction, error)
	GetUserTransactions(ctx context.Context, userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
}

// GoalUpdate carries the goal fields to change. Nil fields are left as they are.
type GoalUpdate struct {
	Name   *string
	Target *decimal.Decimal
	Date   *time.Time
}

// GoalServicer defines the contract for goal-related business logic.
// A non-nil ownerID on update and delete restricts the change to that user's goal.
type GoalServicer interface {
	CreateGoal(ctx context.Context, userID uint, name string, target, saved decimal.Decimal, date time.Time) (*models.Goal, error)
	GetUserGoals(ctx context.Context, userID uint) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, goalID uint, ownerID *uint, update GoalUpdate) (*models.Goal, error)
	DeleteGoal(ctx context.Context, goalID uint, ownerID *uint) (*models.Goal, error)
	AddGoalMoney(ctx context.Context, userID, goalID uint, amount decimal.Decimal, date time.Time, note *string) (*models.Goal, error)
	GetGoalHistory(ctx context.Context, userID, goalID uint, page pagination.PageRequest) (*pagination.PageResponse[models.GoalSaving], error)
}

// PredictionServicer defines the contract for the expense forecast.
type PredictionServicer interface {
	GetForecast(ctx context.Context, userID uint) (*insights.Forecast, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, entry AuditEntry)
}
