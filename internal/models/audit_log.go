package models

// AuditLog records sensitive user operations.
type AuditLog struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   uint   `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
	Base
}

// All lists every model in creation order, for AutoMigrate.
var All = []interface{}{
	&User{},
	&Budget{},
	&Transaction{},
	&Goal{},
	&GoalSaving{},
	&AuditLog{},
}
