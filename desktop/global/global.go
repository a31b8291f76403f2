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
	Version          = common.Version
	Build            = common.Build
	Name             = "CaseAI-Desktop"
	LogName          = "caseai-desktop"
	Description      = "CaseAI Desktop"
	TaskTicker       = 60 // seconds between task checks
	ConsoleExitDelay = 10 // seconds to wait so that user can read the console output when exiting

	// EnvResourceDir overrides the resource directory location, which is
	// normally derived from the executable path
	EnvResourceDir = schema.EnvResourceDir

	// ResourceDirName is the directory next to the executable that holds
	// bundled resources, including the backend binary
	ResourceDirName = "resources"

	DefaultPort = 8787
)

var (
	Debug = false
)
