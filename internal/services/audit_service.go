package services

import (
	"context"
	"encoding/json"

	"finadvisor/internal/logger"
	"finadvisor/internal/models"

	"gorm.io/gorm"
)

// Audited actions.
const (
	AuditSignup      = "SIGNUP"
	AuditSetBudget   = "SET_BUDGET"
	AuditCreateGoal  = "CREATE_GOAL"
	AuditUpdateGoal  = "UPDATE_GOAL"
	AuditDeleteGoal  = "DELETE_GOAL"
	AuditGoalDeposit = "GOAL_DEPOSIT"
)

// AuditEntry describes one mutation to record.
type AuditEntry struct {
	UserID       uint
	Action       string
	ResourceType string
	ResourceID   uint
	IPAddress    string
	Changes      map[string]interface{}
}

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Failures are logged and never reach the caller.
func (s *auditService) Log(ctx context.Context, e AuditEntry) {
	row := &models.AuditLog{
		UserID:       e.UserID,
		Action:       e.Action,
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		IPAddress:    e.IPAddress,
	}
	if len(e.Changes) > 0 {
		data, err := json.Marshal(e.Changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", e.Action)
			data = []byte("{}")
		}
		row.Changes = string(data)
	}

	// The request context may already be cancelled once the response is out.
	if err := s.db.WithContext(context.WithoutCancel(ctx)).Create(row).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"user_id", e.UserID,
			"action", e.Action,
			"resource_type", e.ResourceType,
			"resource_id", e.ResourceID,
		)
	}
}
