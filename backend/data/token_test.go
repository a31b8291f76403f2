//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package data

import (
	"testing"

	"github.com/genhopie/CaseAI/common/schema"
)

func TestLoginGetToken(t *testing.T) {
	d := newTestData(t)

	access, refresh, err := d.LoginGetToken("admin", "admin1234")
	if err != nil {
		t.Fatalf("LoginGetToken failed: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected non-empty tokens")
	}

	// Access token validates for the access purpose
	user, role, err := d.ValidateToken(access, schema.TokenPurposeAccess)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if user != "admin" {
		t.Errorf("expected subject admin, got %s", user)
	}
	if role != schema.RoleAdmin {
		t.Errorf("expected admin role, got %d", role)
	}

	// Purpose mismatch must fail
	if _, _, err = d.ValidateToken(access, schema.TokenPurposeRefresh); err == nil {
		t.Error("expected purpose mismatch to fail")
	}
	if _, _, err = d.ValidateToken(refresh, schema.TokenPurposeAccess); err == nil {
		t.Error("expected purpose mismatch to fail")
	}
}

func TestLoginBadPassword(t *testing.T) {
	d := newTestData(t)

	if _, _, err := d.LoginGetToken("admin", "wrong"); err == nil {
		t.Error("expected login failure")
	}
}

func TestRefreshToken(t *testing.T) {
	d := newTestData(t)

	_, refresh, err := d.LoginGetToken("admin", "admin1234")
	if err != nil {
		t.Fatalf("LoginGetToken failed: %v", err)
	}

	access, err := d.RefreshToken(refresh)
	if err != nil {
		t.Fatalf("RefreshToken failed: %v", err)
	}

	user, _, err := d.ValidateToken(access, schema.TokenPurposeAccess)
	if err != nil {
		t.Fatalf("refreshed token invalid: %v", err)
	}
	if user != "admin" {
		t.Errorf("expected subject admin, got %s", user)
	}

	// An access token is not acceptable as a refresh token
	if _, err = d.RefreshToken(access); err == nil {
		t.Error("expected refresh with access token to fail")
	}

	// Garbage is rejected
	if _, err = d.RefreshToken("not-a-token"); err == nil {
		t.Error("expected refresh with garbage to fail")
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	d := newTestData(t)

	_, refresh, err := d.LoginGetToken("admin", "admin1234")
	if err != nil {
		t.Fatalf("LoginGetToken failed: %v", err)
	}

	// Tokens signed with one key must not validate under another
	d2 := newTestData(t)
	d2.jwtKey = []byte("a-different-key")
	if _, _, err = d2.ValidateToken(refresh, schema.TokenPurposeRefresh); err == nil {
		t.Error("expected validation to fail with a different key")
	}
}
