package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/logger"
	"finadvisor/internal/models"
	"finadvisor/internal/pagination"
)

// goalService handles savings goals and the deposits made toward them.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal adds a savings goal. A goal created with saved already at or
// above its target starts out completed.
func (s *goalService) CreateGoal(ctx context.Context, userID uint, name string, target, saved decimal.Decimal, date time.Time) (*models.Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" || date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "All fields required")
	}
	if !target.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid target")
	}
	if saved.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid saved amount")
	}

	goal := &models.Goal{
		UserID: userID,
		Name:   name,
		Target: target,
		Saved:  saved,
		Date:   date,
		Status: models.GoalStatusInProgress,
	}
	if goal.Reached() {
		goal.Status = models.GoalStatusCompleted
	}

	if err := s.db.WithContext(ctx).Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// GetUserGoals lists the user's goals, newest first.
func (s *goalService) GetUserGoals(ctx context.Context, userID uint) ([]models.Goal, error) {
	goals := []models.Goal{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("goal_id DESC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// UpdateGoal changes the supplied fields of a goal. Lowering the target to
// or below the saved amount completes the goal.
func (s *goalService) UpdateGoal(ctx context.Context, goalID uint, ownerID *uint, update GoalUpdate) (*models.Goal, error) {
	updates := make(map[string]interface{})
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name must not be empty")
		}
		updates["name"] = name
	}
	if update.Target != nil {
		if !update.Target.IsPositive() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid target")
		}
		updates["target"] = *update.Target
	}
	if update.Date != nil {
		updates["date"] = *update.Date
	}

	var result models.Goal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		goal, err := findGoal(tx, goalID)
		if err != nil {
			return err
		}
		if ownerID != nil && goal.UserID != *ownerID {
			return apperrors.ErrForbidden
		}

		if len(updates) > 0 {
			if err := tx.Model(&models.Goal{}).Where("goal_id = ?", goalID).Updates(updates).Error; err != nil {
				return err
			}
		}
		if err := markCompleted(tx, goalID); err != nil {
			return err
		}
		return tx.First(&result, goalID).Error
	})
	if err != nil {
		return nil, toAppError(err)
	}
	return &result, nil
}

// DeleteGoal removes a goal and its deposit history. Failing to clear the
// history does not stop the goal from being deleted.
func (s *goalService) DeleteGoal(ctx context.Context, goalID uint, ownerID *uint) (*models.Goal, error) {
	db := s.db.WithContext(ctx)

	goal, err := findGoal(db, goalID)
	if err != nil {
		return nil, err
	}
	if ownerID != nil && goal.UserID != *ownerID {
		return nil, apperrors.ErrForbidden
	}

	if err := db.Where("goal_id = ?", goalID).Delete(&models.GoalSaving{}).Error; err != nil {
		logger.Get().Warnw("failed to delete goal savings", "goal_id", goalID, "error", err)
	}

	res := db.Delete(&models.Goal{}, goalID)
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrGoalNotFound
	}
	return goal, nil
}

// AddGoalMoney records a deposit toward a goal and adds it to the goal's
// saved amount in one transaction. The goal completes once saved reaches
// the target and stays completed.
func (s *goalService) AddGoalMoney(ctx context.Context, userID, goalID uint, amount decimal.Decimal, date time.Time, note *string) (*models.Goal, error) {
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid amount")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user_id, goal_id, amount, and date required")
	}

	var result models.Goal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		goal, err := findGoal(tx, goalID)
		if err != nil {
			return err
		}
		if goal.UserID != userID {
			return apperrors.ErrForbidden
		}

		saving := &models.GoalSaving{
			UserID: userID,
			GoalID: goalID,
			Amount: amount,
			Date:   date,
			Note:   note,
		}
		if err := tx.Create(saving).Error; err != nil {
			return err
		}

		// Increment in SQL so concurrent deposits cannot lose updates.
		err = tx.Model(&models.Goal{}).
			Where("goal_id = ?", goalID).
			UpdateColumn("saved", gorm.Expr("saved + ?", amount)).Error
		if err != nil {
			return err
		}
		if err := markCompleted(tx, goalID); err != nil {
			return err
		}
		return tx.First(&result, goalID).Error
	})
	if err != nil {
		return nil, toAppError(err)
	}
	return &result, nil
}

// GetGoalHistory lists the user's deposits toward a goal, newest first. A
// failed lookup is logged and reported as an empty history.
func (s *goalService) GetGoalHistory(ctx context.Context, userID, goalID uint, page pagination.PageRequest) (*pagination.PageResponse[models.GoalSaving], error) {
	base := s.db.WithContext(ctx).Model(&models.GoalSaving{}).
		Where("user_id = ? AND goal_id = ?", userID, goalID).
		Session(&gorm.Session{})

	savings := []models.GoalSaving{}
	if !page.Requested() {
		if err := base.Order("date DESC, created_at DESC").Find(&savings).Error; err != nil {
			logger.Get().Warnw("failed to load goal history", "goal_id", goalID, "user_id", userID, "error", err)
			savings = []models.GoalSaving{}
		}
		result := pagination.All(savings)
		return &result, nil
	}

	page.Defaults()
	var totalItems int64
	err := base.Count(&totalItems).Error
	if err == nil {
		err = base.Order("date DESC, created_at DESC").Scopes(pagination.Paginate(page)).Find(&savings).Error
	}
	if err != nil {
		logger.Get().Warnw("failed to load goal history", "goal_id", goalID, "user_id", userID, "error", err)
		savings, totalItems = []models.GoalSaving{}, 0
	}

	result := pagination.NewPageResponse(savings, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func findGoal(db *gorm.DB, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	if err := db.First(&goal, goalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// markCompleted flips an in-progress goal to completed once saved covers target.
func markCompleted(tx *gorm.DB, goalID uint) error {
	return tx.Model(&models.Goal{}).
		Where("goal_id = ? AND status <> ? AND saved >= target", goalID, models.GoalStatusCompleted).
		UpdateColumn("status", models.GoalStatusCompleted).Error
}

// toAppError passes AppErrors through and wraps anything else as internal.
func toAppError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
