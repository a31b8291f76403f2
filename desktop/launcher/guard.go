//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package launcher

import (
	"sync"

	"github.com/genhopie/CaseAI/common/interfaces"
	"github.com/genhopie/CaseAI/common/null"
)

// Guard owns the lifetime of a spawned backend. Release kills the child at
// most once, ignores kill errors, and treats a nil guard or nil child as a
// no-op, so every shutdown path can call it unconditionally.
type Guard struct {
	child  *Child
	logger interfaces.Logger
	once   sync.Once
}

// NewGuard wraps a child for teardown. A nil child is accepted so the
// caller does not need a special case for degraded mode.
func NewGuard(child *Child, logger interfaces.Logger) *Guard {
	if logger == nil {
		logger = null.Logger()
	}
	return &Guard{child: child, logger: logger}
}

// Release terminates the child process if one was started
func (g *Guard) Release() {
	if g == nil {
		return
	}
	g.once.Do(func() {
		if g.child == nil {
			return
		}
		g.logger.Infof(4010, "stopping backend (pid %d)", g.child.Pid())
		g.child.kill()
	})
}
