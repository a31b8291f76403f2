//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// See LICENSE file for details
//

package global

import (
	"github.com/genhopie/CaseAI/common"
	"github.com/genhopie/CaseAI/common/schema"
)

const (
	Version           = common.Version
	Build             = common.Build
	Name              = "CaseAI-API"
	LogName           = "caseai-api"
	Description       = "CaseAI Local API"
	WindowsBinaryName = "caseai-backend.exe"
	UnixBinaryName    = "caseai-backend"
	TaskTicker        = 60 // seconds between task checks
	ConsoleExitDelay  = 10 // seconds to wait so that user can read the console output when exiting
	MemoryCacheTTL    = 600

	// EnvPort and EnvSecret are set by the desktop shell when it spawns
	// the backend. EnvDataDir may be set by the user or a test harness.
	EnvPort    = schema.EnvPort
	EnvSecret  = schema.EnvSecret
	EnvDataDir = schema.EnvDataDir

	// DevSecret is only used when EnvSecret is absent, which means the
	// backend was started by hand rather than by the shell
	DevSecret = "CHANGE_ME_DEV_ONLY"

	DefaultPort = 8787

	// DefaultAdminUser is created on first start so the desktop app is
	// usable out of the box. The password must be changed in production.
	DefaultAdminUser = "admin"
	DefaultAdminPass = "admin1234"
)

var (
	Debug          = false
	ListenOverride = ""
)
