package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finadvisor/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBudget creates a budget of amount for month (YYYY-MM).
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, month, amount string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:    userID,
		Amount:    decimal.RequireFromString(amount),
		MonthYear: month,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestTransaction creates a transaction of the given type and amount on date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, txType models.TransactionType, amount string, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		Category: fmt.Sprintf("Test Category %d", nextID()),
		Amount:   decimal.RequireFromString(amount),
		Type:     txType,
		Date:     date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestGoal creates an in-progress goal with the given target and saved amounts.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID uint, target, saved string) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID: userID,
		Name:   fmt.Sprintf("Test Goal %d", nextID()),
		Target: decimal.RequireFromString(target),
		Saved:  decimal.RequireFromString(saved),
		Date:   time.Now().UTC().AddDate(0, 6, 0).Truncate(24 * time.Hour),
		Status: models.GoalStatusInProgress,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
