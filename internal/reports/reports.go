// Package reports runs the aggregate read queries behind the budget and
// prediction endpoints. It shares the *sql.DB pool owned by gorm and talks
// to it through sqlx so the month grouping can be written as plain SQL.
package reports

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finadvisor/internal/insights"
	"finadvisor/internal/models"
)

// Store answers aggregate spend and budget questions for one user.
type Store struct {
	db        *sqlx.DB
	monthExpr string
}

const expense = string(models.TransactionTypeExpense)

// monthRow is one (month, amount) pair as returned by the grouped queries.
type monthRow struct {
	Month  string          `db:"month"`
	Amount decimal.Decimal `db:"amount"`
}

// New wraps the connection pool behind db. The SQL month expression and the
// placeholder style follow the gorm dialect.
func New(db *gorm.DB) (*Store, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	switch name := db.Dialector.Name(); name {
	case "postgres":
		return &Store{db: sqlx.NewDb(sqlDB, "postgres"), monthExpr: "to_char(date, 'YYYY-MM')"}, nil
	case "sqlite":
		// sqlx keys its bind type off the driver name; "sqlite3" selects '?'.
		return &Store{db: sqlx.NewDb(sqlDB, "sqlite3"), monthExpr: "strftime('%Y-%m', date)"}, nil
	default:
		return nil, fmt.Errorf("reports: unsupported dialect %q", name)
	}
}

// SpentInMonth sums the user's expense transactions dated in month (YYYY-MM).
func (s *Store) SpentInMonth(ctx context.Context, userID uint, month string) (decimal.Decimal, error) {
	query := s.db.Rebind(`
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = ? AND type = ? AND ` + s.monthExpr + ` = ?`)

	var spent decimal.Decimal
	if err := s.db.GetContext(ctx, &spent, query, userID, expense, month); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum spend for %s: %w", month, err)
	}
	return spent, nil
}

// BudgetsForMonths returns the user's budget amounts keyed by month for the
// given months. Months without a budget row are absent from the map.
func (s *Store) BudgetsForMonths(ctx context.Context, userID uint, months []string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(months))
	if len(months) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
		SELECT month_year AS month, amount
		FROM budget
		WHERE user_id = ? AND month_year IN (?)`, userID, months)
	if err != nil {
		return nil, fmt.Errorf("failed to build budget query: %w", err)
	}

	var rows []monthRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to fetch budgets: %w", err)
	}
	for _, r := range rows {
		out[r.Month] = r.Amount
	}
	return out, nil
}

// SpentByMonths returns the user's expense totals keyed by month for the
// given months. Months without spend are absent from the map.
func (s *Store) SpentByMonths(ctx context.Context, userID uint, months []string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(months))
	if len(months) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
		SELECT `+s.monthExpr+` AS month, COALESCE(SUM(amount), 0) AS amount
		FROM transactions
		WHERE user_id = ? AND type = ? AND `+s.monthExpr+` IN (?)
		GROUP BY `+s.monthExpr, userID, expense, months)
	if err != nil {
		return nil, fmt.Errorf("failed to build spend query: %w", err)
	}

	var rows []monthRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to fetch monthly spend: %w", err)
	}
	for _, r := range rows {
		out[r.Month] = r.Amount
	}
	return out, nil
}

// RecentMonthlyTotals returns the expense totals of the latest limit months
// that have any expense, oldest first.
func (s *Store) RecentMonthlyTotals(ctx context.Context, userID uint, limit int) ([]insights.MonthTotal, error) {
	query := s.db.Rebind(`
		SELECT ` + s.monthExpr + ` AS month, SUM(amount) AS amount
		FROM transactions
		WHERE user_id = ? AND type = ?
		GROUP BY ` + s.monthExpr + `
		ORDER BY month DESC
		LIMIT ?`)

	var rows []monthRow
	if err := s.db.SelectContext(ctx, &rows, query, userID, expense, limit); err != nil {
		return nil, fmt.Errorf("failed to fetch monthly totals: %w", err)
	}

	totals := make([]insights.MonthTotal, len(rows))
	for i, r := range rows {
		totals[len(rows)-1-i] = insights.MonthTotal{Month: r.Month, Total: r.Amount}
	}
	return totals, nil
}
