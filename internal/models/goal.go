package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle state of a savings goal
type GoalStatus string

const (
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusCompleted  GoalStatus = "completed"
)

// Goal is a savings target. Saved only grows through deposits and the
// status moves from in_progress to completed once, never back.
type Goal struct {
	ID     uint            `gorm:"column:goal_id;primaryKey;autoIncrement" json:"goal_id"`
	UserID uint            `gorm:"not null;index" json:"user_id"`
	Name   string          `gorm:"not null" json:"name"`
	Target decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"target"`
	Saved  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"saved"`
	Date   time.Time       `gorm:"type:date;not null" json:"date"`
	Status GoalStatus      `gorm:"not null;default:'in_progress'" json:"status"`
}

// Reached reports whether the saved amount covers the target.
func (g *Goal) Reached() bool {
	return g.Saved.GreaterThanOrEqual(g.Target)
}

// GoalSaving is one deposit toward a goal.
type GoalSaving struct {
	ID     uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint            `gorm:"not null" json:"user_id"`
	GoalID uint            `gorm:"not null;index" json:"goal_id"`
	Amount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Date   time.Time       `gorm:"type:date;not null" json:"date"`
	Note   *string         `json:"note"`
	Base

	Goal Goal `gorm:"foreignKey:GoalID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}
