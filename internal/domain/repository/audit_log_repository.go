package repository

import (
	"hospital-admin/internal/domain/entity"

	"gorm.io/gorm"
)

// AuditLogRepository appends to and reads the audit trail. Entries are never updated.
type AuditLogRepository interface {
	Append(db *gorm.DB, log *entity.AuditLog) error
	Search(db *gorm.DB, f entity.AuditLogFilter) ([]entity.AuditLog, error)
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
}
