package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finadvisor/internal/errors"
	"finadvisor/internal/models"
	"finadvisor/internal/pagination"
	"finadvisor/internal/services"
)

// --- mock goal service ---

type mockGoalService struct {
	createGoalFn     func(userID uint, name string, target, saved decimal.Decimal, date time.Time) (*models.Goal, error)
	getUserGoalsFn   func(userID uint) ([]models.Goal, error)
	updateGoalFn     func(goalID uint, ownerID *uint, update services.GoalUpdate) (*models.Goal, error)
	deleteGoalFn     func(goalID uint, ownerID *uint) (*models.Goal, error)
	addGoalMoneyFn   func(userID, goalID uint, amount decimal.Decimal, date time.Time, note *string) (*models.Goal, error)
	getGoalHistoryFn func(userID, goalID uint, page pagination.PageRequest) (*pagination.PageResponse[models.GoalSaving], error)
}

func (m *mockGoalService) CreateGoal(_ context.Context, userID uint, name string, target, saved decimal.Decimal, date time.Time) (*models.Goal, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(userID, name, target, saved, date)
	}
	return &models.Goal{ID: 1, UserID: userID, Name: name, Target: target, Saved: saved, Date: date}, nil
}

func (m *mockGoalService) GetUserGoals(_ context.Context, userID uint) ([]models.Goal, error) {
	if m.getUserGoalsFn != nil {
		return m.getUserGoalsFn(userID)
	}
	return []models.Goal{}, nil
}

func (m *mockGoalService) UpdateGoal(_ context.Context, goalID uint, ownerID *uint, update services.GoalUpdate) (*models.Goal, error) {
	if m.updateGoalFn != nil {
		return m.updateGoalFn(goalID, ownerID, update)
	}
	return &models.Goal{ID: goalID}, nil
}

func (m *mockGoalService) DeleteGoal(_ context.Context, goalID uint, ownerID *uint) (*models.Goal, error) {
	if m.deleteGoalFn != nil {
		return m.deleteGoalFn(goalID, ownerID)
	}
	return &models.Goal{ID: goalID}, nil
}

func (m *mockGoalService) AddGoalMoney(_ context.Context, userID, goalID uint, amount decimal.Decimal, date time.Time, note *string) (*models.Goal, error) {
	if m.addGoalMoneyFn != nil {
		return m.addGoalMoneyFn(userID, goalID, amount, date, note)
	}
	return &models.Goal{ID: goalID, UserID: userID, Saved: amount}, nil
}

func (m *mockGoalService) GetGoalHistory(_ context.Context, userID, goalID uint, page pagination.PageRequest) (*pagination.PageResponse[models.GoalSaving], error) {
	if m.getGoalHistoryFn != nil {
		return m.getGoalHistoryFn(userID, goalID, page)
	}
	resp := pagination.All([]models.GoalSaving{})
	return &resp, nil
}

var _ services.GoalServicer = (*mockGoalService)(nil)

func setupGoalRouter(handler *GoalHandler) *gin.Engine {
	r := gin.New()
	r.GET("/goals", handler.GetGoals)
	r.POST("/goals", handler.CreateGoal)
	r.POST("/update_goal", handler.UpdateGoal)
	r.POST("/delete_goal", handler.DeleteGoal)
	r.POST("/add_goal_money", handler.AddGoalMoney)
	r.GET("/goal_money_history", handler.GetGoalHistory)
	return r
}

func TestGoalHandler_GetGoals(t *testing.T) {
	t.Run("returns the user's goals", func(t *testing.T) {
		svc := &mockGoalService{
			getUserGoalsFn: func(userID uint) ([]models.Goal, error) {
				return []models.Goal{{
					ID: 3, UserID: userID, Name: "Bike",
					Target: decimal.RequireFromString("500"), Saved: decimal.RequireFromString("120.25"),
					Status: models.GoalStatusInProgress,
				}}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/goals?user_id=8", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		goals := parseJSON(t, rec)["goals"].([]interface{})
		if len(goals) != 1 {
			t.Fatalf("expected 1 goal, got %d", len(goals))
		}
		g := goals[0].(map[string]interface{})
		if g["goal_id"] != float64(3) || g["saved"] != 120.25 || g["status"] != "in_progress" || g["user_id"] != float64(8) {
			t.Errorf("unexpected goal: %v", g)
		}
	})

	t.Run("returns 400 without user_id", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/goals", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertMessage(t, parseJSON(t, rec), "user_id required")
	})
}

func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("saved defaults to zero", func(t *testing.T) {
		svc := &mockGoalService{
			createGoalFn: func(userID uint, name string, target, saved decimal.Decimal, _ time.Time) (*models.Goal, error) {
				if !saved.IsZero() {
					t.Errorf("expected zero saved, got %s", saved)
				}
				if !target.Equal(decimal.RequireFromString("1000")) || name != "Trip" || userID != 1 {
					t.Errorf("unexpected args %d %q %s", userID, name, target)
				}
				return &models.Goal{ID: 4, UserID: userID, Name: name, Target: target}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupGoalRouter(NewGoalHandler(svc, audit))

		rec := doRequest(r, "POST", "/goals", `{"user_id":1,"name":"Trip","target":"1000","date":"2024-12-31"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		assertMessage(t, parseJSON(t, rec), "Goal added")
		if len(audit.entries) != 1 || audit.entries[0].Action != services.AuditCreateGoal || audit.entries[0].ResourceID != 4 {
			t.Errorf("unexpected audit entries %+v", audit.entries)
		}
	})

	t.Run("passes an initial saved amount", func(t *testing.T) {
		svc := &mockGoalService{
			createGoalFn: func(userID uint, name string, target, saved decimal.Decimal, date time.Time) (*models.Goal, error) {
				if !saved.Equal(decimal.RequireFromString("250")) {
					t.Errorf("expected saved 250, got %s", saved)
				}
				return &models.Goal{ID: 1}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/goals", `{"user_id":1,"name":"Trip","target":1000,"saved":250,"date":"2024-12-31"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on missing fields", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

		for _, body := range []string{
			`{"name":"Trip","target":1000,"date":"2024-12-31"}`,
			`{"user_id":1,"target":1000,"date":"2024-12-31"}`,
			`{"user_id":1,"name":"Trip","date":"2024-12-31"}`,
			`{"user_id":1,"name":"Trip","target":1000}`,
		} {
			rec := doRequest(r, "POST", "/goals", body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", body, rec.Code)
			}
			assertMessage(t, parseJSON(t, rec), "All fields required")
		}
	})
}

func TestGoalHandler_UpdateGoal(t *testing.T) {
	t.Run("passes only supplied fields", func(t *testing.T) {
		svc := &mockGoalService{
			updateGoalFn: func(goalID uint, ownerID *uint, update services.GoalUpdate) (*models.Goal, error) {
				if goalID != 5 {
					t.Errorf("expected goal 5, got %d", goalID)
				}
				if ownerID != nil {
					t.Errorf("expected no owner filter, got %d", *ownerID)
				}
				if update.Name != nil || update.Date != nil {
					t.Errorf("expected only target, got %+v", update)
				}
				if update.Target == nil || !update.Target.Equal(decimal.RequireFromString("75")) {
					t.Errorf("unexpected target %v", update.Target)
				}
				return &models.Goal{ID: goalID, UserID: 1}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/update_goal", `{"goal_id":"5","target":75}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		assertMessage(t, parseJSON(t, rec), "Goal updated")
	})

	t.Run("passes the owner filter and parsed date", func(t *testing.T) {
		svc := &mockGoalService{
			updateGoalFn: func(goalID uint, ownerID *uint, update services.GoalUpdate) (*models.Goal, error) {
				if ownerID == nil || *ownerID != 2 {
					t.Errorf("expected owner 2, got %v", ownerID)
				}
				if update.Date == nil || !update.Date.Equal(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)) {
					t.Errorf("unexpected date %v", update.Date)
				}
				if update.Name == nil || *update.Name != "New bike" {
					t.Errorf("unexpected name %v", update.Name)
				}
				return &models.Goal{ID: goalID, UserID: 2}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/update_goal", `{"goal_id":5,"user_id":2,"name":"New bike","date":"2025-01-31"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 without goal_id", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/update_goal", `{"name":"x"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertMessage(t, parseJSON(t, rec), "goal_id required")
	})

	t.Run("maps service errors", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{apperrors.ErrGoalNotFound, http.StatusNotFound, "GOAL_NOT_FOUND"},
			{apperrors.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		}
		for _, tc := range cases {
			svc := &mockGoalService{
				updateGoalFn: func(uint, *uint, services.GoalUpdate) (*models.Goal, error) { return nil, tc.err },
			}
			r := setupGoalRouter(NewGoalHandler(svc, &mockAuditService{}))

			rec := doRequest(r, "POST", "/update_goal", `{"goal_id":5,"user_id":9,"name":"x"}`)

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), tc.code)
		}
	})
}

func TestGoalHandler_DeleteGoal(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotGoal uint
		svc := &mockGoalService{
			deleteGoalFn: func(goalID uint, ownerID *uint) (*models.Goal, error) {
				gotGoal = goalID
				if ownerID != nil {
					t.Errorf("expected no owner, got %d", *ownerID)
				}
				return &models.Goal{ID: goalID, UserID: 5}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupGoalRouter(NewGoalHandler(svc, audit))

		rec := doRequest(r, "POST", "/delete_goal", `{"goal_id":12}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		assertMessage(t, parseJSON(t, rec), "Goal deleted")
		if gotGoal != 12 {
			t.Errorf("expected goal 12, got %d", gotGoal)
		}
		if len(audit.entries) != 1 || audit.entries[0].Action != services.AuditDeleteGoal {
			t.Fatalf("unexpected audit entries %+v", audit.entries)
		}
		if audit.entries[0].UserID != 5 || audit.entries[0].ResourceID != 12 {
			t.Errorf("expected audit for owner 5 and goal 12, got %+v", audit.entries[0])
		}
	})

	t.Run("returns 404 for unknown goal", func(t *testing.T) {
		svc := &mockGoalService{
			deleteGoalFn: func(uint, *uint) (*models.Goal, error) { return nil, apperrors.ErrGoalNotFound },
		}
		r := setupGoalRouter(NewGoalHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/delete_goal", `{"goal_id":12}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertMessage(t, parseJSON(t, rec), "Goal not found")
	})

	t.Run("returns 400 without goal_id", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/delete_goal", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertMessage(t, parseJSON(t, rec), "goal_id required")
	})
}

func TestGoalHandler_AddGoalMoney(t *testing.T) {
	const required = "user_id, goal_id, amount, and date required"

	t.Run("returns 200 and records the deposit", func(t *testing.T) {
		svc := &mockGoalService{
			addGoalMoneyFn: func(userID, goalID uint, amount decimal.Decimal, date time.Time, note *string) (*models.Goal, error) {
				if userID != 1 || goalID != 3 {
					t.Errorf("unexpected ids %d %d", userID, goalID)
				}
				if !amount.Equal(decimal.RequireFromString("60")) {
					t.Errorf("expected 60, got %s", amount)
				}
				if note == nil || *note != "bonus" {
					t.Errorf("unexpected note %v", note)
				}
				return &models.Goal{ID: goalID, UserID: userID, Saved: amount, Status: models.GoalStatusInProgress}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupGoalRouter(NewGoalHandler(svc, audit))

		rec := doRequest(r, "POST", "/add_goal_money",
			`{"user_id":1,"goal_id":"3","amount":"60","date":"2024-03-10","note":"bonus"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		assertMessage(t, parseJSON(t, rec), "Amount added to goal")
		if len(audit.entries) != 1 || audit.entries[0].Action != services.AuditGoalDeposit {
			t.Errorf("unexpected audit entries %+v", audit.entries)
		}
	})

	t.Run("returns 400 on missing fields", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

		for _, body := range []string{
			`{"goal_id":3,"amount":10,"date":"2024-03-10"}`,
			`{"user_id":1,"amount":10,"date":"2024-03-10"}`,
			`{"user_id":1,"goal_id":3,"date":"2024-03-10"}`,
			`{"user_id":1,"goal_id":3,"amount":10}`,
			`{"user_id":1,"goal_id":3,"amount":0,"date":"2024-03-10"}`,
		} {
			rec := doRequest(r, "POST", "/add_goal_money", body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", body, rec.Code)
			}
			assertMessage(t, parseJSON(t, rec), required)
		}
	})

	t.Run("returns 400 on invalid amount", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

		for _, amount := range []string{`"abc"`, `-5`} {
			rec := doRequest(r, "POST", "/add_goal_money",
				`{"user_id":1,"goal_id":3,"amount":`+amount+`,"date":"2024-03-10"}`)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", amount, rec.Code)
			}
			assertMessage(t, parseJSON(t, rec), "Invalid amount format")
		}
	})

	t.Run("maps service errors", func(t *testing.T) {
		cases := []struct {
			err     error
			status  int
			message string
		}{
			{apperrors.ErrGoalNotFound, http.StatusNotFound, "Goal not found"},
			{apperrors.ErrForbidden, http.StatusForbidden, "Unauthorized or wrong user for this goal"},
			{apperrors.Wrap(apperrors.ErrInternalServer, context.Canceled), http.StatusInternalServerError, apperrors.ErrInternalServer.Message},
		}
		for _, tc := range cases {
			audit := &mockAuditService{}
			svc := &mockGoalService{
				addGoalMoneyFn: func(uint, uint, decimal.Decimal, time.Time, *string) (*models.Goal, error) {
					return nil, tc.err
				},
			}
			r := setupGoalRouter(NewGoalHandler(svc, audit))

			rec := doRequest(r, "POST", "/add_goal_money", `{"user_id":1,"goal_id":3,"amount":10,"date":"2024-03-10"}`)

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			assertMessage(t, parseJSON(t, rec), tc.message)
			if len(audit.entries) != 0 {
				t.Errorf("expected no audit entries on failure, got %d", len(audit.entries))
			}
		}
	})
}

func TestGoalHandler_GetGoalHistory(t *testing.T) {
	t.Run("returns the deposit history", func(t *testing.T) {
		note := "first"
		svc := &mockGoalService{
			getGoalHistoryFn: func(userID, goalID uint, _ pagination.PageRequest) (*pagination.PageResponse[models.GoalSaving], error) {
				if userID != 1 || goalID != 3 {
					t.Errorf("unexpected ids %d %d", userID, goalID)
				}
				resp := pagination.All([]models.GoalSaving{
					{ID: 1, UserID: 1, GoalID: 3, Amount: decimal.RequireFromString("60"), Note: &note},
				})
				return &resp, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/goal_money_history?user_id=1&goal_id=3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		history := parseJSON(t, rec)["history"].([]interface{})
		if len(history) != 1 || history[0].(map[string]interface{})["note"] != "first" {
			t.Errorf("unexpected history: %v", history)
		}
	})

	t.Run("returns an empty list rather than null", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/goal_money_history?user_id=1&goal_id=3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		history, ok := parseJSON(t, rec)["history"].([]interface{})
		if !ok || len(history) != 0 {
			t.Errorf("expected empty list, got %v", history)
		}
	})

	t.Run("returns 400 when an id is missing", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}, &mockAuditService{}))

		for _, path := range []string{"/goal_money_history?user_id=1", "/goal_money_history?goal_id=3"} {
			rec := doRequest(r, "GET", path, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", path, rec.Code)
			}
			assertMessage(t, parseJSON(t, rec), "user_id and goal_id required")
		}
	})
}
