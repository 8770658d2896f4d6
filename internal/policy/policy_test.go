package policy

import (
	"testing"

	"approvals/internal/models"
	"approvals/internal/testutil"
)

var (
	alice = &models.Principal{ID: "u-alice", Email: "alice@example.com", Role: models.RoleUser}
	bob   = &models.Principal{ID: "u-bob", Email: "bob@example.com", Role: models.RoleUser}
	admin = &models.Principal{ID: "u-admin", Email: "admin@example.com", Role: models.RoleAdmin}
)

func aliceRequest() *models.Request {
	return &models.Request{RequesterID: alice.ID, RequesterEmail: alice.Email, Status: models.StatusEscalated}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		principal  *models.Principal
		capability Capability
		target     *models.Request
		wantCode   string
	}{
		{"anonymous_create", nil, CreateRequest, nil, "UNAUTHORIZED"},
		{"anonymous_admin_queue", nil, ListOpenRequests, nil, "UNAUTHORIZED"},
		{"user_create", alice, CreateRequest, nil, ""},
		{"user_list_own", alice, ListOwnRequests, nil, ""},
		{"owner_get", alice, GetRequest, aliceRequest(), ""},
		{"other_user_get", bob, GetRequest, aliceRequest(), "FORBIDDEN"},
		{"admin_get_any", admin, GetRequest, aliceRequest(), ""},
		{"get_missing_target", alice, GetRequest, nil, "REQUEST_NOT_FOUND"},
		{"user_open_queue", alice, ListOpenRequests, nil, "ADMIN_REQUIRED"},
		{"admin_open_queue", admin, ListOpenRequests, nil, ""},
		{"owner_cannot_approve_own", alice, ApproveRequest, aliceRequest(), "ADMIN_REQUIRED"},
		{"user_reject", bob, RejectRequest, aliceRequest(), "ADMIN_REQUIRED"},
		{"admin_approve", admin, ApproveRequest, aliceRequest(), ""},
		{"admin_reject", admin, RejectRequest, aliceRequest(), ""},
		{"user_logs", alice, ListAuditLogs, nil, ""},
		{"unknown_capability", admin, Capability("delete"), nil, "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.principal, tt.capability, tt.target)
			if tt.wantCode == "" {
				testutil.AssertNoError(t, err)
				return
			}
			testutil.AssertAppError(t, err, tt.wantCode)
		})
	}
}

func TestAuditLogScope(t *testing.T) {
	t.Run("admin_sees_all", func(t *testing.T) {
		scope, err := AuditLogScope(admin)
		testutil.AssertNoError(t, err)
		if !scope.All {
			t.Error("expected admin scope to cover all entries")
		}
	})

	t.Run("user_sees_own", func(t *testing.T) {
		scope, err := AuditLogScope(alice)
		testutil.AssertNoError(t, err)
		if scope.All {
			t.Error("expected user scope to be restricted")
		}
		if scope.RequesterID != alice.ID {
			t.Errorf("expected requester %s, got %s", alice.ID, scope.RequesterID)
		}
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := AuditLogScope(nil)
		testutil.AssertAppError(t, err, "UNAUTHORIZED")
	})
}
