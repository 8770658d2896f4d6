package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"approvals/internal/models"
	"approvals/internal/uuid"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewPrincipal returns a principal with a fresh id and unique email.
func NewPrincipal(role models.Role) *models.Principal {
	n := nextID()
	return &models.Principal{
		ID:    uuid.New(),
		Email: fmt.Sprintf("%s%d@test.com", role, n),
		Role:  role,
	}
}

// CreateTestProfile stores a profile row for principal so the identity
// provider resolves its role.
func CreateTestProfile(t *testing.T, db *gorm.DB, principal *models.Principal) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		Base:     models.Base{ID: principal.ID},
		Email:    principal.Email,
		FullName: principal.FullName,
		Role:     principal.Role,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateTestRequest stores a request owned by requester in the given status.
// Risk fields are filled to match the status: open requests look escalated,
// everything else looks low risk.
func CreateTestRequest(t *testing.T, db *gorm.DB, requester *models.Principal, status models.RequestStatus) *models.Request {
	t.Helper()

	req := &models.Request{
		Title:          fmt.Sprintf("Test Request %d", nextID()),
		Description:    "Fixture request description",
		RequestType:    models.RequestTypeOther,
		RequesterID:    requester.ID,
		RequesterEmail: requester.Email,
		Status:         status,
		RiskLevel:      models.RiskLow,
		RiskFactors:    []string{},
	}
	if status.IsOpen() {
		req.RiskLevel = models.RiskHigh
		req.RiskScore = 60
		req.RiskFactors = []string{"urgent"}
	}
	if err := db.Create(req).Error; err != nil {
		t.Fatalf("failed to create test request: %v", err)
	}
	return req
}

// CreateTestAuditLog stores an audit entry for request.
func CreateTestAuditLog(t *testing.T, db *gorm.DB, request *models.Request, action models.AuditAction) *models.AuditLog {
	t.Helper()

	entry := &models.AuditLog{
		RequestID:       request.ID,
		Action:          action,
		PerformedBy:     request.RequesterEmail,
		PerformedByRole: models.RoleUser,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test audit log: %v", err)
	}
	return entry
}

// CountAuditLogs returns the number of audit entries for requestID.
func CountAuditLogs(t *testing.T, db *gorm.DB, requestID string) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.AuditLog{}).Where("request_id = ?", requestID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count audit logs: %v", err)
	}
	return count
}
