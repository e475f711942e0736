package services

import (
	"context"
	"testing"
	"time"

	"finadvisor/internal/models"
	"finadvisor/internal/reports"
	"finadvisor/internal/testutil"
)

func TestGetForecast(t *testing.T) {
	ctx := context.Background()
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	t.Run("three_months", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store, err := reports.New(db)
		testutil.AssertNoError(t, err)
		svc := NewPredictionService(store)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, "60", day(2024, time.January, 3))
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, "40", day(2024, time.January, 20))
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, "200", day(2024, time.February, 11))
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, "300", day(2024, time.March, 1))
		testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, "9000", day(2024, time.March, 1))

		forecast, err := svc.GetForecast(ctx, user.ID)
		testutil.AssertNoError(t, err)

		wantLabels := []string{"2024-01", "2024-02", "2024-03"}
		for i, l := range wantLabels {
			if forecast.Labels[i] != l {
				t.Errorf("label %d: expected %s, got %s", i, l, forecast.Labels[i])
			}
		}
		if forecast.NextPred != 210 {
			t.Errorf("expected next_pred 210, got %d", forecast.NextPred)
		}
		wantPredicted := []int64{200, 300, 210}
		for i, p := range wantPredicted {
			if forecast.Predicted[i] != p {
				t.Errorf("predicted %d: expected %d, got %d", i, p, forecast.Predicted[i])
			}
		}
	})

	t.Run("only_latest_six_months", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store, err := reports.New(db)
		testutil.AssertNoError(t, err)
		svc := NewPredictionService(store)
		user := testutil.CreateTestUser(t, db)

		for m := time.January; m <= time.August; m++ {
			testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeExpense, "100", day(2023, m, 15))
		}

		forecast, err := svc.GetForecast(ctx, user.ID)
		testutil.AssertNoError(t, err)

		if len(forecast.Labels) != 6 {
			t.Fatalf("expected 6 months, got %d", len(forecast.Labels))
		}
		if forecast.Labels[0] != "2023-03" || forecast.Labels[5] != "2023-08" {
			t.Errorf("expected 2023-03..2023-08, got %v", forecast.Labels)
		}
		if forecast.NextPred != 105 {
			t.Errorf("expected next_pred 105, got %d", forecast.NextPred)
		}
	})

	t.Run("no_expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store, err := reports.New(db)
		testutil.AssertNoError(t, err)
		svc := NewPredictionService(store)

		forecast, err := svc.GetForecast(ctx, 77)
		testutil.AssertNoError(t, err)
		if forecast.NextPred != 0 || len(forecast.Labels) != 0 || len(forecast.Predicted) != 0 {
			t.Errorf("expected an empty forecast, got %+v", forecast)
		}
	})
}
