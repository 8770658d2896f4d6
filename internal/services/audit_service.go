package services

import (
	"context"

	apperrors "approvals/internal/errors"
	"approvals/internal/logger"
	"approvals/internal/metrics"
	"approvals/internal/models"
	"approvals/internal/pagination"
	"approvals/internal/policy"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// auditService appends lifecycle events to the audit_logs table.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Record inserts one entry. The write is detached from ctx cancellation so a
// client disconnect after the primary write does not drop its audit trail.
// Failures are logged and counted, never returned as an error to propagate.
func (s *auditService) Record(ctx context.Context, e AuditEntry) AuditResult {
	entry := &models.AuditLog{
		RequestID:       e.RequestID,
		Action:          e.Action,
		PerformedBy:     e.PerformedBy,
		PerformedByRole: e.PerformedByRole,
		Details:         datatypes.JSONMap(e.Details),
	}

	if err := s.db.WithContext(context.WithoutCancel(ctx)).Create(entry).Error; err != nil {
		logger.Named("audit").Errorw("failed to create audit log entry",
			"error", err,
			"request_id", e.RequestID,
			"action", e.Action,
			"performed_by", e.PerformedBy,
		)
		metrics.AuditWritesTotal.WithLabelValues(string(e.Action), "failed").Inc()
		return AuditResult{Err: err}
	}

	metrics.AuditWritesTotal.WithLabelValues(string(e.Action), "recorded").Inc()
	return AuditResult{Entry: entry}
}

// List returns entries visible under scope, newest first. A restricted scope
// first resolves the requester's request ids; owning none yields an empty
// page.
func (s *auditService) List(ctx context.Context, scope policy.LogScope, page pagination.PageRequest) (pagination.Page[models.AuditLog], error) {
	db := s.db.WithContext(ctx)
	query := db.Model(&models.AuditLog{})

	if !scope.All {
		var requestIDs []string
		if err := db.Model(&models.Request{}).
			Where("requester_id = ?", scope.RequesterID).
			Pluck("id", &requestIDs).Error; err != nil {
			return pagination.Page[models.AuditLog]{}, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
		}
		if len(requestIDs) == 0 {
			return pagination.NewPage[models.AuditLog](nil, 0), nil
		}
		query = query.Where("request_id IN ?", requestIDs)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return pagination.Page[models.AuditLog]{}, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	var entries []models.AuditLog
	if err := query.Order("created_at DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&entries).Error; err != nil {
		return pagination.Page[models.AuditLog]{}, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	return pagination.NewPage(entries, total), nil
}
