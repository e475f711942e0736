package models

import "github.com/shopspring/decimal"

// Budget is the spending ceiling a user sets for one calendar month.
// There is at most one row per (user, month_year).
type Budget struct {
	ID        uint            `gorm:"column:budget_id;primaryKey;autoIncrement" json:"budget_id"`
	UserID    uint            `gorm:"not null;uniqueIndex:uq_budget_user_month" json:"user_id"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	MonthYear string          `gorm:"column:month_year;type:char(7);not null;uniqueIndex:uq_budget_user_month" json:"month_year"`
	Base
}

// TableName keeps the singular table name used by the schema.
func (Budget) TableName() string { return "budget" }
