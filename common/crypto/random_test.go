/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package crypto

import (
	"testing"
)

func TestRandomBytesLength(t *testing.T) {
	b, err := RandomBytes(32)
	if err != nil {
		t.Fatalf("RandomBytes failed: %v", err)
	}
	if len(b) != 32 {
		t.Errorf("expected 32 bytes, got %d", len(b))
	}
}

func TestSessionSecretNotEmpty(t *testing.T) {
	s, err := SessionSecret()
	if err != nil {
		t.Fatalf("SessionSecret failed: %v", err)
	}
	if s == "" {
		t.Error("SessionSecret returned an empty string")
	}
}

func TestSessionSecretUnique(t *testing.T) {
	a, err := SessionSecret()
	if err != nil {
		t.Fatalf("SessionSecret failed: %v", err)
	}
	b, err := SessionSecret()
	if err != nil {
		t.Fatalf("SessionSecret failed: %v", err)
	}
	if a == b {
		t.Error("two session secrets were identical")
	}
}
