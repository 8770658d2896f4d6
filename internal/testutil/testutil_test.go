package testutil_test

import (
	"testing"

	"approvals/internal/errors"
	"approvals/internal/models"
	"approvals/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	for _, table := range []string{"profiles", "requests", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBIsIsolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestRequest(t, first, testutil.NewPrincipal(models.RoleUser), models.StatusPending)

	var count int64
	second.Model(&models.Request{}).Count(&count)
	if count != 0 {
		t.Errorf("expected isolated database, found %d requests", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.NewPrincipal(models.RoleUser)
	profile := testutil.CreateTestProfile(t, db, user)
	if profile.ID != user.ID {
		t.Errorf("expected profile id %s, got %s", user.ID, profile.ID)
	}

	req := testutil.CreateTestRequest(t, db, user, models.StatusEscalated)
	if req.ID == "" {
		t.Fatal("request should have an id")
	}
	if req.RiskLevel != models.RiskHigh {
		t.Errorf("expected open fixture to be HIGH risk, got %s", req.RiskLevel)
	}

	testutil.CreateTestAuditLog(t, db, req, models.ActionSubmitted)
	if n := testutil.CountAuditLogs(t, db, req.ID); n != 1 {
		t.Errorf("expected 1 audit log, got %d", n)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrRequestNotFound, "custom message")
	testutil.AssertAppError(t, err, "REQUEST_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
