//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package cserver

import (
	"net/http/httptest"
	"testing"
)

func TestRemoteIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "127.0.0.1:54321"

	if ip := RemoteIP(req); ip != "127.0.0.1" {
		t.Errorf("expected 127.0.0.1, got %s", ip)
	}
}

func TestRemoteIPForwarded(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "127.0.0.1:54321"
	req.Header.Set("X-Forwarded-For", "10.1.2.3, 10.4.5.6")

	if ip := RemoteIP(req); ip != "10.1.2.3" {
		t.Errorf("expected first forwarded IP, got %s", ip)
	}
}

func TestHandlerHealth(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	resp := s.HandlerHealth(httptest.NewRequest("GET", "/health", nil))
	if resp.HTTPCode != 200 {
		t.Errorf("expected 200, got %d", resp.HTTPCode)
	}
}
