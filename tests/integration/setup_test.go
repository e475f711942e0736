package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finadvisor/internal/logger"
	"finadvisor/internal/middleware"
	"finadvisor/internal/reports"
	"finadvisor/internal/router"
	"finadvisor/internal/services"
	"finadvisor/internal/testutil"
	"finadvisor/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	Auth   *middleware.Auth
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	reportStore, err := reports.New(db)
	if err != nil {
		t.Fatalf("failed to create report store: %v", err)
	}

	auth := middleware.NewAuth("integration-secret", time.Hour)
	r := router.New(router.Deps{
		Users:        services.NewUserService(db),
		Budgets:      services.NewBudgetService(db, reportStore),
		Transactions: services.NewTransactionService(db),
		Goals:        services.NewGoalService(db),
		Predictions:  services.NewPredictionService(reportStore),
		Audit:        services.NewAuditService(db),
		Auth:         auth,
	})

	return &testApp{DB: db, Router: r, Auth: auth}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// mustOK fails the test unless rec is a 200 success envelope, and returns the body.
func mustOK(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["status"] != "success" {
		t.Fatalf("expected status success, got %v", result["status"])
	}
	return result
}

// signupAndLogin creates an account and logs in, returning the user ID and token.
func (app *testApp) signupAndLogin(t *testing.T, name, email, password string) (userID uint, token string) {
	t.Helper()

	body := fmt.Sprintf(`{"name":%q,"email":%q,"password":%q}`, name, email, password)
	mustOK(t, app.request("POST", "/signup", body, ""))

	body = fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	result := mustOK(t, app.request("POST", "/login", body, ""))
	user := result["user"].(map[string]interface{})
	return uint(user["id"].(float64)), result["token"].(string)
}

// today returns the current date as YYYY-MM-DD.
func today() string {
	return time.Now().Format("2006-01-02")
}
