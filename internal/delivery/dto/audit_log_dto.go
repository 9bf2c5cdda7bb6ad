package dto

import (
	"time"

	"hospital-admin/internal/domain/entity"
)

// Request DTOs

// AuditLogQuery pages through the trail newest first. Before is the next_before cursor of
// the previous page.
type AuditLogQuery struct {
	Action string
	UserID *int64
	Before *int64
	Limit  int
}

// Response DTOs

type AuditActorResponse struct {
	UserID   int64           `json:"user_id"`
	Username string          `json:"username"`
	UserType entity.UserType `json:"user_type"`
}

type AuditLogResponse struct {
	ID        int64               `json:"id"`
	Action    string              `json:"action"`
	Actor     *AuditActorResponse `json:"actor"`
	Entity    string              `json:"entity,omitempty"`
	EntityID  *int64              `json:"entity_id,omitempty"`
	Details   entity.JSON         `json:"details,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

type AuditTrailResponse struct {
	Entries    []AuditLogResponse `json:"entries"`
	NextBefore *int64             `json:"next_before"`
}
