// Package policy decides whether a principal may perform an operation.
package policy

import (
	apperrors "approvals/internal/errors"
	"approvals/internal/models"
)

// Capability names an operation gated by the policy.
type Capability string

const (
	CreateRequest    Capability = "create_request"
	ListOwnRequests  Capability = "list_own_requests"
	GetRequest       Capability = "get_request"
	ListOpenRequests Capability = "list_open_requests"
	ApproveRequest   Capability = "approve"
	RejectRequest    Capability = "reject"
	ListAuditLogs    Capability = "list_audit_logs"
)

// Authorize returns nil when p may perform capability on target. target is
// only consulted by capabilities scoped to a single request and may be nil
// otherwise. A nil principal is always ErrUnauthorized, never ErrForbidden.
func Authorize(p *models.Principal, capability Capability, target *models.Request) error {
	if p == nil {
		return apperrors.ErrUnauthorized
	}

	switch capability {
	case CreateRequest, ListOwnRequests, ListAuditLogs:
		return nil
	case GetRequest:
		if target == nil {
			return apperrors.ErrRequestNotFound
		}
		if p.IsAdmin() || target.IsOwnedBy(p.ID) {
			return nil
		}
		return apperrors.ErrForbidden
	case ListOpenRequests, ApproveRequest, RejectRequest:
		if p.IsAdmin() {
			return nil
		}
		return apperrors.ErrAdminRequired
	}

	return apperrors.ErrForbidden
}

// LogScope restricts which audit entries a principal may read.
type LogScope struct {
	// All is set for admins; RequesterID is ignored then.
	All         bool
	RequesterID string
}

// AuditLogScope returns the audit visibility of p: admins see every entry,
// everyone else only entries for requests they submitted.
func AuditLogScope(p *models.Principal) (LogScope, error) {
	if err := Authorize(p, ListAuditLogs, nil); err != nil {
		return LogScope{}, err
	}
	if p.IsAdmin() {
		return LogScope{All: true}, nil
	}
	return LogScope{RequesterID: p.ID}, nil
}
