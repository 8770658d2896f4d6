package models

import (
	"time"

	"approvals/internal/uuid"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditAction names a lifecycle event.
type AuditAction string

const (
	ActionSubmitted    AuditAction = "SUBMITTED"
	ActionAutoApproved AuditAction = "AUTO_APPROVED"
	ActionEscalated    AuditAction = "ESCALATED"
	ActionApproved     AuditAction = "APPROVED"
	ActionRejected     AuditAction = "REJECTED"
)

// AuditLog is an immutable record of one lifecycle event on a request.
// Rows are only ever inserted.
type AuditLog struct {
	ID              string            `gorm:"type:uuid;primaryKey" json:"id"`
	RequestID       string            `gorm:"not null;index" json:"request_id"`
	Action          AuditAction       `gorm:"size:16;not null" json:"action"`
	PerformedBy     string            `gorm:"not null" json:"performed_by"`
	PerformedByRole Role              `gorm:"size:16;not null" json:"performed_by_role"`
	Details         datatypes.JSONMap `json:"details"`
	CreatedAt       time.Time         `gorm:"index" json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new entries
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New()
	}
	return nil
}
