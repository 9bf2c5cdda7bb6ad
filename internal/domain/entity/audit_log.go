package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *int64    `gorm:"index" json:"user_id,omitempty"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// AuditEvent is one entry to append to the audit trail. Entity and EntityID are empty for
// actions that do not touch a row.
type AuditEvent struct {
	ActorID  *int64
	Action   string
	Entity   string
	EntityID int64
	Details  JSON
}

// Metadata folds the event target and details into the stored jsonb document.
func (e AuditEvent) Metadata() JSON {
	if e.Entity == "" && len(e.Details) == 0 {
		return nil
	}
	m := JSON{}
	for k, v := range e.Details {
		m[k] = v
	}
	if e.Entity != "" {
		m["entity"] = e.Entity
		m["entity_id"] = e.EntityID
	}
	return m
}

// AuditLogFilter narrows an audit trail read. Before is an id cursor: only entries with a
// smaller id are returned.
type AuditLogFilter struct {
	Action string
	UserID *int64
	Before *int64
	Limit  int
}

// Common audit actions
const (
	AuditActionUserLogin       = "user.login"
	AuditActionUserLogout      = "user.logout"
	AuditActionDoctorRegister  = "doctor.register"
	AuditActionPatientRegister = "patient.register"
)
