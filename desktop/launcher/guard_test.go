//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package launcher

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/genhopie/CaseAI/common/null"
)

func TestGuardNilSafe(t *testing.T) {
	var g *Guard
	g.Release() // must not panic

	g = NewGuard(nil, nil)
	g.Release()
	g.Release() // second release is a no-op
}

func TestGuardKillsChild(t *testing.T) {
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

	child, ok := l.Spawn(path, Config{Port: 8787, Secret: "test"})
	if !ok || child == nil {
		t.Fatal("expected successful spawn")
	}
	if !child.Running() {
		t.Fatal("expected child to be running")
	}

	g := NewGuard(child, null.Logger())
	g.Release()
	g.Release() // second release must be harmless

	// The reaper closes the done channel once the kill lands
	deadline := time.Now().Add(5 * time.Second)
	for child.Running() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if child.Running() {
		t.Error("child still running after Release")
	}
}
