package service

import (
	"context"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService appends events to the audit trail. Pass the caller's transaction so the
// entry commits or rolls back with the change it describes.
type AuditService interface {
	Record(ctx context.Context, tx *gorm.DB, event entity.AuditEvent) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, tx *gorm.DB, event entity.AuditEvent) error {
	entry := &entity.AuditLog{
		UserID:   event.ActorID,
		Action:   event.Action,
		Metadata: event.Metadata(),
	}

	if err := s.auditRepo.Append(tx.WithContext(ctx), entry); err != nil {
		s.log.WithFields(logrus.Fields{
			"action": event.Action,
			"entity": event.Entity,
		}).Warnf("Failed to append audit log: %+v", err)
		return err
	}
	return nil
}
