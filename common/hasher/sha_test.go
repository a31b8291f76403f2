/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package hasher

import (
	"os"
	"path/filepath"
	"testing"
)

// Known SHA-256 of the string "abc"
const abcSHA256 = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

func TestSHA256Bytes(t *testing.T) {
	h := New().SHA256Bytes([]byte("abc"))
	if h.Hex() != abcSHA256 {
		t.Errorf("SHA256Bytes returned %s, expected %s", h.Hex(), abcSHA256)
	}
}

func TestSHA256File(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "abc.txt")
	if err := os.WriteFile(f, []byte("abc"), 0600); err != nil {
		t.Fatalf("unable to write test file: %v", err)
	}

	h := New().SHA256File(f)
	if h.Hex() != abcSHA256 {
		t.Errorf("SHA256File returned %s, expected %s", h.Hex(), abcSHA256)
	}
}

func TestSHA256FileMissing(t *testing.T) {
	h := New().SHA256File(filepath.Join(t.TempDir(), "no-such-file"))
	if len(h.Bytes()) != 0 {
		t.Errorf("expected empty hash for missing file, got %d bytes", len(h.Bytes()))
	}
}

func TestSHA256FileCache(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "abc.txt")
	if err := os.WriteFile(f, []byte("abc"), 0600); err != nil {
		t.Fatalf("unable to write test file: %v", err)
	}

	h := New(WithCache(600))
	first := h.SHA256File(f).Hex()

	// Rewrite the file; the cached hash should still be returned
	if err := os.WriteFile(f, []byte("xyz"), 0600); err != nil {
		t.Fatalf("unable to rewrite test file: %v", err)
	}

	second := h.SHA256File(f).Hex()
	if first != second {
		t.Errorf("cache miss: first=%s second=%s", first, second)
	}
}

func TestCompare(t *testing.T) {
	h := New().SHA256Bytes([]byte("abc"))
	if !h.Compare(abcSHA256) {
		t.Error("Compare rejected matching hex hash")
	}
	if h.Compare("") {
		t.Error("Compare accepted empty string")
	}
}
