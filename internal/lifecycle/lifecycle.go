// Package lifecycle decides how a request moves between statuses. It holds
// no state and performs no I/O: callers persist the Outcome it returns.
package lifecycle

import (
	"strings"

	apperrors "approvals/internal/errors"
	"approvals/internal/models"
	"approvals/internal/risk"
)

const (
	// SystemActor is recorded as decided_by for automatic approvals.
	SystemActor = "system"

	AutoApprovalReason    = "Auto-approved: low risk classification"
	DefaultApprovalReason = "Approved by admin"
)

// Outcome is the result of a transition: the status to persist, the audit
// action to record, and the decision fields when the transition sets them.
type Outcome struct {
	Status         models.RequestStatus
	Action         models.AuditAction
	DecidedBy      *string
	DecisionReason *string
}

// Submit computes the initial status of a newly classified request. LOW risk
// is approved on the spot; anything else is escalated for review. The
// SUBMITTED action is recorded separately by the caller for every request.
func Submit(c risk.Classification) Outcome {
	if c.Level == models.RiskLow {
		return Outcome{
			Status:         models.StatusApproved,
			Action:         models.ActionAutoApproved,
			DecidedBy:      ptr(SystemActor),
			DecisionReason: ptr(AutoApprovalReason),
		}
	}
	return Outcome{
		Status: models.StatusEscalated,
		Action: models.ActionEscalated,
	}
}

// Verdict is the kind of admin decision.
type Verdict string

const (
	VerdictApprove Verdict = "approve"
	VerdictReject  Verdict = "reject"
)

func (v Verdict) pastTense() string {
	if v == VerdictReject {
		return "rejected"
	}
	return "approved"
}

// Decision is an admin's ruling on an open request.
type Decision struct {
	Verdict    Verdict
	AdminEmail string
	Reason     string
}

// Approve builds an approval decision; a blank reason falls back to the default.
func Approve(adminEmail, reason string) Decision {
	return Decision{Verdict: VerdictApprove, AdminEmail: adminEmail, Reason: reason}
}

// Reject builds a rejection decision; the reason is mandatory.
func Reject(adminEmail, reason string) Decision {
	return Decision{Verdict: VerdictReject, AdminEmail: adminEmail, Reason: reason}
}

// Decide validates d against the current status. Decisions are legal only
// from PENDING or ESCALATED; APPROVED and REJECTED are absorbing.
func Decide(current models.RequestStatus, d Decision) (Outcome, error) {
	if !current.IsOpen() {
		return Outcome{}, apperrors.WithMessage(apperrors.ErrInvalidTransition,
			"Only PENDING or ESCALATED requests can be "+d.Verdict.pastTense())
	}

	switch d.Verdict {
	case VerdictApprove:
		reason := d.Reason
		if strings.TrimSpace(reason) == "" {
			reason = DefaultApprovalReason
		}
		return Outcome{
			Status:         models.StatusApproved,
			Action:         models.ActionApproved,
			DecidedBy:      ptr(d.AdminEmail),
			DecisionReason: ptr(reason),
		}, nil
	case VerdictReject:
		if strings.TrimSpace(d.Reason) == "" {
			return Outcome{}, apperrors.ErrReasonRequired
		}
		return Outcome{
			Status:         models.StatusRejected,
			Action:         models.ActionRejected,
			DecidedBy:      ptr(d.AdminEmail),
			DecisionReason: ptr(d.Reason),
		}, nil
	}

	return Outcome{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown decision "+string(d.Verdict))
}

func ptr(s string) *string { return &s }
