package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage layout for calendar dates.
const DateLayout = "2006-01-02"

// MonthLayout is the layout of a month-year key.
const MonthLayout = "2006-01"

func init() {
	// Money is rendered as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Base contains the creation timestamp shared by the append-only tables
type Base struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// MonthKey returns the month-year key (YYYY-MM) for t.
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// ParseDate parses a YYYY-MM-DD date into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
