// Package insights turns budget, spend and monthly-total rows into the
// month summary and next-month forecast served by the API. Everything here
// is a pure function of its inputs.
package insights

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"finadvisor/internal/models"
)

// Tier classifies a month summary note.
type Tier string

const (
	TierNone     Tier = "none"
	TierPositive Tier = "positive"
	TierCaution  Tier = "caution"
	TierAlert    Tier = "alert"
)

// Notes shown to the user for each tier.
const (
	NoteNoBudget   = "No budget set for this month."
	NoteOverBudget = "🚨 Over budget — time to cut expenses!"
	NoteOnTrack    = "✅ All good — you're managing well!"
	NoteCareful    = "⚠️ You're at the edge, spend carefully!"
)

// ForecastWindow is the number of most recent spending months fed into the forecast.
const ForecastWindow = 6

// PreviousMonths is the number of months before the current one reported by get_budget.
const PreviousMonths = 3

// forecastBump scales the monthly mean. The product is taken in float64 and
// halves round to even.
const forecastBump = 1.05

var (
	onTrackShare = decimal.RequireFromString("0.40")
	edgeShare    = decimal.RequireFromString("0.10")
)

// MonthSummary is the decision-support view of one month's budget.
type MonthSummary struct {
	Budget        decimal.Decimal
	Spent         decimal.Decimal
	Remaining     decimal.Decimal
	RemainingDays int
	Tier          Tier
	Note          string
}

// ComputeMonthSummary compares spend against the month's budget as of today.
// A zero budget means none was set.
func ComputeMonthSummary(budget, spent decimal.Decimal, today time.Time, daysInMonth int) MonthSummary {
	remaining := budget.Sub(spent).Round(2)

	days := daysInMonth - today.Day()
	if days < 0 {
		days = 0
	}

	tier := classify(budget, remaining)
	return MonthSummary{
		Budget:        budget,
		Spent:         spent,
		Remaining:     remaining,
		RemainingDays: days,
		Tier:          tier,
		Note:          noteFor(tier),
	}
}

func classify(budget, remaining decimal.Decimal) Tier {
	if !budget.IsPositive() {
		return TierNone
	}
	if remaining.IsNegative() {
		return TierAlert
	}

	share := remaining.Div(budget)
	switch {
	case share.GreaterThanOrEqual(onTrackShare):
		return TierPositive
	case share.GreaterThanOrEqual(edgeShare):
		return TierCaution
	default:
		// Same note as the band above; the split is kept for when the
		// bands get distinct wording.
		return TierCaution
	}
}

func noteFor(t Tier) string {
	switch t {
	case TierAlert:
		return NoteOverBudget
	case TierPositive:
		return NoteOnTrack
	case TierCaution:
		return NoteCareful
	default:
		return NoteNoBudget
	}
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// RecentMonths returns the month keys of the count months strictly before
// the reference month, most recent first.
func RecentMonths(reference time.Time, count int) []string {
	keys := make([]string, 0, count)
	first := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= count; i++ {
		keys = append(keys, models.MonthKey(first.AddDate(0, -i, 0)))
	}
	return keys
}

// MonthTotal is the expense total of one month.
type MonthTotal struct {
	Month string
	Total decimal.Decimal
}

// Forecast is the actual-versus-predicted series for charting plus the next month's prediction.
type Forecast struct {
	Labels    []string `json:"labels"`
	Actual    []int64  `json:"actual"`
	Predicted []int64  `json:"predicted"`
	NextPred  int64    `json:"next_pred"`
}

// ForecastNextMonth predicts next month's spend as the mean of the given
// monthly totals (oldest first) plus 5%. Totals are truncated to whole units.
func ForecastNextMonth(totals []MonthTotal) Forecast {
	f := Forecast{
		Labels:    make([]string, 0, len(totals)),
		Actual:    make([]int64, 0, len(totals)),
		Predicted: []int64{},
	}
	if len(totals) == 0 {
		return f
	}

	sum := decimal.Zero
	for _, t := range totals {
		whole := t.Total.Truncate(0)
		f.Labels = append(f.Labels, t.Month)
		f.Actual = append(f.Actual, whole.IntPart())
		sum = sum.Add(whole)
	}

	mean := float64(sum.IntPart()) / float64(len(totals))
	f.NextPred = int64(math.RoundToEven(mean * forecastBump))

	if len(f.Actual) > 1 {
		f.Predicted = append(f.Predicted, f.Actual[1:]...)
	}
	f.Predicted = append(f.Predicted, f.NextPred)
	return f
}
