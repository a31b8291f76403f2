//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package launcher

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/genhopie/CaseAI/common/null"
)

func TestBackendPath(t *testing.T) {
	p, err := BackendPath(filepath.Join("opt", "caseai", "resources"))
	if err != nil {
		t.Fatalf("BackendPath failed: %v", err)
	}
	if !strings.Contains(p, binDirName) {
		t.Errorf("expected path to contain %q, got %s", binDirName, p)
	}
	if runtime.GOOS == "windows" {
		if !strings.HasSuffix(p, windowsBinaryName) {
			t.Errorf("expected path to end in %q, got %s", windowsBinaryName, p)
		}
	} else {
		if !strings.HasSuffix(p, unixBinaryName) {
			t.Errorf("expected path to end in %q, got %s", unixBinaryName, p)
		}
	}
}

func TestBackendPathEmpty(t *testing.T) {
	if _, err := BackendPath(""); err == nil {
		t.Error("expected error for empty resource directory")
	}
}

func TestSpawnMissingExecutable(t *testing.T) {
	l, err := New(WithLogger(null.Logger()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "does-not-exist")
	child, ok := l.Spawn(path, Config{Port: 8787, Secret: "test"})
	if ok {
		t.Error("expected ok=false for missing executable")
	}
	if child != nil {
		t.Error("expected nil child for missing executable")
	}
}

func TestSpawnNotExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}

	l, err := New(WithLogger(null.Logger()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// A plain file without the execute bit makes the OS refuse the spawn
	path := filepath.Join(t.TempDir(), "not-executable")
	if err = os.WriteFile(path, []byte("data"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	child, ok := l.Spawn(path, Config{Port: 8787, Secret: "test"})
	if ok || child != nil {
		t.Error("expected (nil, false) when the OS refuses to start the file")
	}
}

func TestSpawnInjectsEnvironment(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses a shell script")
	}

	dir := t.TempDir()
	outFile := filepath.Join(dir, "env.out")

	// A stand-in backend that records the environment it received
	script := "#!/bin/sh\necho \"$LCAI_PORT $LCAI_JWT_SECRET\" > " + outFile + "\n"
	path := filepath.Join(dir, unixBinaryName)
	if err := os.WriteFile(path, []byte(script), 0700); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	l, err := New(WithLogger(null.Logger()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	child, ok := l.Spawn(path, Config{Port: 9191, Secret: "session-secret"})
	if !ok || child == nil {
		t.Fatal("expected successful spawn")
	}
	if child.Pid() <= 0 {
		t.Errorf("expected a valid pid, got %d", child.Pid())
	}

	// Wait for the child to run and be reaped
	deadline := time.Now().Add(5 * time.Second)
	for child.Running() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if child.Running() {
		t.Fatal("child did not exit")
	}

	out, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("child did not write output: %v", err)
	}
	if strings.TrimSpace(string(out)) != "9191 session-secret" {
		t.Errorf("unexpected child environment: %q", string(out))
	}
}

func TestSpawnSecondChildRejected(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses a shell script")
	}

	dir := t.TempDir()
	script := "#!/bin/sh\nsleep 30\n"
	path := filepath.Join(dir, unixBinaryName)
	if err := os.WriteFile(path, []byte(script), 0700); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	l, err := New(WithLogger(null.Logger()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	first, ok := l.Spawn(path, Config{Port: 8787, Secret: "test"})
	if !ok || first == nil {
		t.Fatal("expected successful spawn")
	}
	defer NewGuard(first, null.Logger()).Release()

	second, ok := l.Spawn(path, Config{Port: 8787, Secret: "test"})
	if !ok {
		t.Error("expected ok=true from repeated spawn")
	}
	if second != first {
		t.Error("expected repeated spawn to return the existing child")
	}
}
