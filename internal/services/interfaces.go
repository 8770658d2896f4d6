package services

import (
	"context"

	"approvals/internal/models"
	"approvals/internal/pagination"
	"approvals/internal/policy"
)

// CreateRequestInput carries a submission as received from the transport.
type CreateRequestInput struct {
	Title       string
	Description string
	RequestType models.RequestType
}

// RequestServicer defines the contract for the request lifecycle. Every
// method authorizes principal itself; transports only authenticate.
type RequestServicer interface {
	Create(ctx context.Context, principal *models.Principal, input CreateRequestInput) (*models.Request, error)
	ListOwn(ctx context.Context, principal *models.Principal, page pagination.PageRequest) (pagination.Page[models.Request], error)
	Get(ctx context.Context, principal *models.Principal, requestID string) (*models.Request, error)
	ListOpen(ctx context.Context, principal *models.Principal, page pagination.PageRequest) (pagination.Page[models.Request], error)
	Approve(ctx context.Context, principal *models.Principal, requestID, reason string) (*models.Request, error)
	Reject(ctx context.Context, principal *models.Principal, requestID, reason string) (*models.Request, error)
}

// AuditEntry is one lifecycle event to append to the audit trail.
type AuditEntry struct {
	RequestID       string
	Action          models.AuditAction
	PerformedBy     string
	PerformedByRole models.Role
	Details         map[string]any
}

// AuditResult reports the best-effort outcome of an audit write. Err is
// informational: callers must not fail the primary transition on it.
type AuditResult struct {
	Entry *models.AuditLog
	Err   error
}

// Recorded reports whether the entry was persisted.
func (r AuditResult) Recorded() bool { return r.Err == nil && r.Entry != nil }

// AuditServicer defines the contract for the append-only audit trail.
type AuditServicer interface {
	Record(ctx context.Context, entry AuditEntry) AuditResult
	List(ctx context.Context, scope policy.LogScope, page pagination.PageRequest) (pagination.Page[models.AuditLog], error)
}
