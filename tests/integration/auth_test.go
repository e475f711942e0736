package integration

import (
	"net/http"
	"testing"

	"finadvisor/internal/handlers"
	"finadvisor/internal/models"
)

func TestAuthFlow_SignupLoginProfile(t *testing.T) {
	app := setupApp(t)

	// Step 1: Signup and login
	userID, token := app.signupAndLogin(t, "Asha", "Asha@Test.com", "password123")
	if userID == 0 || token == "" {
		t.Fatal("expected a user ID and token")
	}

	// Step 2: Profile with the login token
	result := mustOK(t, app.request("GET", "/profile", "", token))
	user := result["user"].(map[string]interface{})
	if user["email"] != "asha@test.com" || user["name"] != "Asha" {
		t.Errorf("unexpected profile: %v", user)
	}

	// Step 3: Signup is audited
	var count int64
	app.DB.Model(&models.AuditLog{}).Where("user_id = ? AND action = ?", userID, "SIGNUP").Count(&count)
	if count != 1 {
		t.Errorf("expected 1 signup audit entry, got %d", count)
	}
}

func TestAuthFlow_Failures(t *testing.T) {
	app := setupApp(t)
	app.signupAndLogin(t, "Asha", "asha@test.com", "password123")

	tests := []struct {
		name    string
		path    string
		body    string
		status  int
		message string
	}{
		{"duplicate signup", "/signup", `{"name":"A","email":"asha@test.com","password":"x"}`, http.StatusBadRequest, "Account already exists"},
		{"signup missing fields", "/signup", `{"name":"A"}`, http.StatusBadRequest, "All fields are required"},
		{"login missing password", "/login", `{"email":"asha@test.com"}`, http.StatusBadRequest, "Email and password required"},
		{"login unknown account", "/login", `{"email":"nobody@test.com","password":"x"}`, http.StatusNotFound, "Account not found"},
		{"login wrong password", "/login", `{"email":"asha@test.com","password":"nope"}`, http.StatusUnauthorized, "Invalid credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.request("POST", tt.path, tt.body, "")
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			result := parseJSON(t, rec)
			if result["status"] != "error" || result["message"] != tt.message {
				t.Errorf("unexpected body: %v", result)
			}
		})
	}
}

func TestAuthFlow_ProfileRequiresToken(t *testing.T) {
	app := setupApp(t)

	for _, header := range []string{"", "not-a-token"} {
		rec := app.request("GET", "/profile", "", header)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("token %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestHealthAndCORS(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/", "", "")
	if rec.Code != http.StatusOK || rec.Body.String() != handlers.HealthMessage {
		t.Fatalf("unexpected health response %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}

	rec = app.request("OPTIONS", "/goals", "", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 on preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("expected CORS header, got %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}
