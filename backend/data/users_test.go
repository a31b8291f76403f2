//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package data

import (
	"testing"

	"github.com/genhopie/CaseAI/common/schema"
)

func TestUpdateUserDisable(t *testing.T) {
	d := newTestData(t)

	if _, err := d.AddUser(schema.UserCreateRequest{User: "bob", Password: "bobs-password"}); err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}

	// Disable the account
	active := false
	meta, err := d.UpdateUser("bob", schema.UserUpdateRequest{Active: &active})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if meta.Active {
		t.Error("expected user to be inactive")
	}

	// Logins must now be rejected even with the correct password
	if _, err = d.Auth("bob", "bobs-password"); err == nil {
		t.Error("expected auth failure for disabled account")
	}

	// Re-enable and verify login works again
	active = true
	if _, err = d.UpdateUser("bob", schema.UserUpdateRequest{Active: &active}); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if _, err = d.Auth("bob", "bobs-password"); err != nil {
		t.Errorf("auth failed after re-enable: %v", err)
	}
}

func TestUpdateUserPassword(t *testing.T) {
	d := newTestData(t)

	if _, err := d.AddUser(schema.UserCreateRequest{User: "carol", Password: "old-password"}); err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}

	if _, err := d.UpdateUser("carol", schema.UserUpdateRequest{Password: "new-password"}); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	if _, err := d.Auth("carol", "old-password"); err == nil {
		t.Error("expected old password to be rejected")
	}
	if _, err := d.Auth("carol", "new-password"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}

func TestUpdateUserRole(t *testing.T) {
	d := newTestData(t)

	if _, err := d.AddUser(schema.UserCreateRequest{User: "dave", Password: "daves-password"}); err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}

	meta, err := d.UpdateUser("dave", schema.UserUpdateRequest{Role: schema.RoleAdmin})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if meta.Role != schema.RoleAdmin {
		t.Errorf("expected role %d, got %d", schema.RoleAdmin, meta.Role)
	}

	// The auth record must carry the new role too
	role, err := d.Auth("dave", "daves-password")
	if err != nil {
		t.Fatalf("auth failed: %v", err)
	}
	if role != schema.RoleAdmin {
		t.Errorf("expected auth role %d, got %d", schema.RoleAdmin, role)
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	d := newTestData(t)

	if _, err := d.UpdateUser("ghost", schema.UserUpdateRequest{DisplayName: "Ghost"}); err == nil {
		t.Error("expected error updating a user that does not exist")
	}
}
