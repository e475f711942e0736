package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is an immutable expense or income event.
type Transaction struct {
	ID       uint            `gorm:"column:txn_id;primaryKey;autoIncrement" json:"txn_id"`
	UserID   uint            `gorm:"not null;index" json:"user_id"`
	Category string          `gorm:"not null" json:"category"`
	Amount   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Type     TransactionType `gorm:"not null" json:"type"`
	Date     time.Time       `gorm:"type:date;not null" json:"date"`
	Base
}
