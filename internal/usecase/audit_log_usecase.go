package usecase

import (
	"context"
	"errors"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
	ErrInvalidAuditPage = errors.New("limit must be between 1 and 200")
)

type AuditLogUsecase interface {
	SearchAuditLogs(ctx context.Context, q *dto.AuditLogQuery) (*dto.AuditTrailResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditLogRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// SearchAuditLogs reads one page of the trail. One extra row is fetched to tell whether
// an older page exists.
func (u *auditLogUsecase) SearchAuditLogs(ctx context.Context, q *dto.AuditLogQuery) (*dto.AuditTrailResponse, error) {
	limit := q.Limit
	if limit == 0 {
		limit = defaultAuditLimit
	}
	if limit < 0 || limit > maxAuditLimit {
		return nil, ErrInvalidAuditPage
	}

	logs, err := u.auditLogRepo.Search(u.db.WithContext(ctx), entity.AuditLogFilter{
		Action: q.Action,
		UserID: q.UserID,
		Before: q.Before,
		Limit:  limit + 1,
	})
	if err != nil {
		u.log.Warnf("Failed to search audit logs: %+v", err)
		return nil, err
	}

	resp := &dto.AuditTrailResponse{}
	if len(logs) > limit {
		logs = logs[:limit]
		next := logs[limit-1].ID
		resp.NextBefore = &next
	}
	resp.Entries = converter.AuditLogsToResponses(logs)
	return resp, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
