package repository

import (
	"errors"

	"hospital-admin/internal/domain/entity"
	domainRepo "hospital-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

// actorColumns keeps the password hash out of embedded users.
var actorColumns = []string{"user_id", "username", "user_type"}

func (r *auditLogRepository) Append(db *gorm.DB, log *entity.AuditLog) error {
	return db.Omit("User").Create(log).Error
}

// Search returns entries newest first.
func (r *auditLogRepository) Search(db *gorm.DB, f entity.AuditLogFilter) ([]entity.AuditLog, error) {
	query := db.Model(&entity.AuditLog{}).
		Preload("User", func(tx *gorm.DB) *gorm.DB { return tx.Select(actorColumns) })

	if f.Action != "" {
		query = query.Where("action = ?", f.Action)
	}
	if f.UserID != nil {
		query = query.Where("user_id = ?", *f.UserID)
	}
	if f.Before != nil {
		query = query.Where("id < ?", *f.Before)
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}

	var logs []entity.AuditLog
	if err := query.Order("id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := db.Preload("User", func(tx *gorm.DB) *gorm.DB { return tx.Select(actorColumns) }).
		Where("id = ?", id).
		Take(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}
