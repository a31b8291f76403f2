//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

// Package launcher starts and owns the bundled backend process. The backend
// is optional at runtime: if the executable is missing the desktop continues
// without a local API rather than failing to start.
package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/genhopie/CaseAI/common/interfaces"
	"github.com/genhopie/CaseAI/common/null"
	"github.com/genhopie/CaseAI/common/schema"
)

const (
	windowsBinaryName = "caseai-backend.exe"
	unixBinaryName    = "caseai-backend"
	binDirName        = "bin"
)

// Config carries the values the backend receives through its environment
type Config struct {
	Port   int    // backend listen port
	Secret string // per-session JWT signing secret
}

// Launcher spawns the backend process. At most one child is started per
// Launcher instance.
type Launcher struct {
	logger interfaces.Logger
	eid    uint32
	child  *Child
}

// New returns a Launcher with the supplied options applied
func New(options ...func(*Launcher) error) (*Launcher, error) {

	l := &Launcher{
		logger: null.Logger(),
		eid:    4000,
	}

	// Apply the options
	for _, op := range options {
		err := op(l)
		if err != nil {
			return nil, err
		}
	}
	return l, nil
}

//goland:noinspection GoUnusedExportedFunction
func WithLogger(logger interfaces.Logger) func(*Launcher) error {
	return func(l *Launcher) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		l.logger = logger
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithEid(eid uint32) func(*Launcher) error {
	return func(l *Launcher) error {
		l.eid = eid
		return nil
	}
}

// BackendPath returns the expected location of the backend executable
// inside the resource directory. It does not check that the file exists -
// a missing executable is handled by Spawn.
func BackendPath(resourceDir string) (string, error) {
	if resourceDir == "" {
		return "", errors.New("resource directory not set")
	}

	name := unixBinaryName
	if runtime.GOOS == "windows" {
		name = windowsBinaryName
	}
	return filepath.Join(resourceDir, binDirName, name), nil
}

// Spawn starts the backend executable at path with the listen port and
// session secret injected into its environment. A missing executable or an
// OS refusal to start it is absorbed: the problem is logged, (nil, false)
// is returned, and the desktop continues without a local API.
func (l *Launcher) Spawn(path string, cfg Config) (*Child, bool) {

	// At most one child per Launcher
	if l.child != nil {
		l.logger.Warningf(l.eid+4, "backend already started (pid %d), ignoring spawn request", l.child.Pid())
		return l.child, true
	}

	info, err := os.Stat(path)
	if err != nil {
		l.logger.Warningf(l.eid+1, "backend executable not found at %s, continuing without local API: %v", path, err)
		return nil, false
	}
	if info.IsDir() {
		l.logger.Warningf(l.eid+1, "backend path %s is a directory, continuing without local API", path)
		return nil, false
	}

	cmd := exec.Command(path)
	cmd.Dir = filepath.Dir(path)
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("%s=%d", schema.EnvPort, cfg.Port),
		fmt.Sprintf("%s=%s", schema.EnvSecret, cfg.Secret))

	if err = cmd.Start(); err != nil {
		l.logger.Errorf(l.eid+2, "unable to start backend %s: %v", path, err)
		return nil, false
	}

	child := &Child{cmd: cmd, done: make(chan struct{})}

	// Reap the child when it exits so that it never lingers as a zombie.
	// The exit status is deliberately ignored - there is no restart
	// supervision, the user restarts the application instead.
	go func() {
		_ = cmd.Wait()
		close(child.done)
	}()

	l.child = child
	l.logger.Infof(l.eid+3, "backend started (pid %d) on port %d", child.Pid(), cfg.Port)
	return child, true
}

// Child is a handle to a running backend process
type Child struct {
	cmd  *exec.Cmd
	done chan struct{}
}

// Pid returns the process ID of the child
func (c *Child) Pid() int {
	if c == nil || c.cmd == nil || c.cmd.Process == nil {
		return 0
	}
	return c.cmd.Process.Pid
}

// Running reports whether the child has not yet been reaped
func (c *Child) Running() bool {
	if c == nil {
		return false
	}
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}

// kill terminates the child process. Errors are ignored because the
// process may already have exited on its own.
func (c *Child) kill() {
	if c == nil || c.cmd == nil || c.cmd.Process == nil {
		return
	}
	_ = c.cmd.Process.Kill()
}
