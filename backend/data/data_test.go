//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package data

import (
	"testing"

	"github.com/genhopie/CaseAI/backend/global"
	"github.com/genhopie/CaseAI/common/null"
	"github.com/genhopie/CaseAI/common/schema"
)

// newTestData creates a Data instance backed by a temporary directory
func newTestData(t *testing.T) *Data {
	t.Helper()
	t.Setenv(global.EnvDataDir, t.TempDir())
	t.Setenv(global.EnvSecret, "test-signing-secret")

	conf, err := global.Config()
	if err != nil {
		t.Fatalf("config error: %v", err)
	}

	d, err := New(conf, null.Logger())
	if err != nil {
		t.Fatalf("data error: %v", err)
	}
	t.Cleanup(d.Close)
	return d
}

func TestDefaultAdminCreated(t *testing.T) {
	d := newTestData(t)

	role, err := d.Auth(global.DefaultAdminUser, global.DefaultAdminPass)
	if err != nil {
		t.Fatalf("default admin auth failed: %v", err)
	}
	if role != schema.RoleAdmin {
		t.Errorf("expected admin role, got %d", role)
	}
}

func TestDefaultAdminNotOverwritten(t *testing.T) {
	d := newTestData(t)

	if err := d.SetAuth(global.DefaultAdminUser, "new-password", schema.RoleAdmin); err != nil {
		t.Fatalf("SetAuth failed: %v", err)
	}

	// Re-running the check must not reset the password
	if err := d.ensureDefaultAdmin(); err != nil {
		t.Fatalf("ensureDefaultAdmin failed: %v", err)
	}

	if _, err := d.Auth(global.DefaultAdminUser, "new-password"); err != nil {
		t.Errorf("changed password did not survive: %v", err)
	}
}

func TestUserLifecycle(t *testing.T) {
	d := newTestData(t)

	meta, err := d.AddUser(schema.UserCreateRequest{
		User:     "alice",
		Password: "alices-password",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}
	if meta.Role != schema.RoleUser {
		t.Errorf("expected default role %d, got %d", schema.RoleUser, meta.Role)
	}

	// Duplicate must be rejected
	if _, err = d.AddUser(schema.UserCreateRequest{User: "alice", Password: "x"}); err == nil {
		t.Error("expected error adding duplicate user")
	}

	// New user can authenticate
	if _, err = d.Auth("alice", "alices-password"); err != nil {
		t.Errorf("new user auth failed: %v", err)
	}

	users, err := d.ListUsers()
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("expected 1 user, got %d", len(users))
	}

	if err = d.DeleteUser("alice"); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	// Credentials must be gone too
	if _, err = d.Auth("alice", "alices-password"); err == nil {
		t.Error("expected auth failure after delete")
	}
}

func TestAddUserRejectsInvalidUsername(t *testing.T) {
	d := newTestData(t)

	if _, err := d.AddUser(schema.UserCreateRequest{User: "bad user!", Password: "x"}); err == nil {
		t.Error("expected error for invalid username characters")
	}
}
