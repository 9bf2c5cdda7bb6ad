package converter

import (
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
)

// AuditLogToResponse splits the stored metadata back into target and details.
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	resp := &dto.AuditLogResponse{
		ID:        log.ID,
		Action:    log.Action,
		CreatedAt: log.CreatedAt,
	}
	if log.User != nil {
		resp.Actor = &dto.AuditActorResponse{
			UserID:   log.User.UserID,
			Username: log.User.Username,
			UserType: log.User.UserType,
		}
	}

	details := entity.JSON{}
	for k, v := range log.Metadata {
		switch k {
		case "entity":
			resp.Entity, _ = v.(string)
		case "entity_id":
			resp.EntityID = jsonInt(v)
		default:
			details[k] = v
		}
	}
	if len(details) > 0 {
		resp.Details = details
	}
	return resp
}

func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *AuditLogToResponse(&logs[i]))
	}
	return responses
}

// jsonInt reads an id that went through jsonb (float64) or was set in process (int64).
func jsonInt(v interface{}) *int64 {
	switch n := v.(type) {
	case float64:
		id := int64(n)
		return &id
	case int64:
		return &n
	case int:
		id := int64(n)
		return &id
	}
	return nil
}
