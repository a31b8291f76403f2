/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/genhopie/CaseAI/common/interfaces"
)

const (
	ConfigDesktopSet   = "desktop_config"
	ConfigLogFile      = "log_file"
	ConfigLogStdout    = "log_stdout"
	ConfigLogRetention = "log_retention"
	ConfigPort         = "backend_port"
)

// setDefaults makes sure the set exists, sets default values, and constraints
func setDefaults(c interfaces.Config) interfaces.Parameters {

	// Desktop configuration set
	dc := c.NewSet(ConfigDesktopSet)
	dc.SetConstraint(ConfigLogFile, 0, 0, "")            // no log file by default
	dc.SetConstraint(ConfigLogStdout, 0, 0, true)        // by default log to stdout
	dc.SetConstraint(ConfigLogRetention, 1, 0, 90)       // days
	dc.SetConstraint(ConfigPort, 1, 65535, DefaultPort)  // backend listen port
	return dc
}

// DefaultDataPaths returns candidate data directories in preference order.
// The desktop shell runs in the user session, so these are per-user
// locations. They are shared with the backend so that all application
// state lives under one directory.
func DefaultDataPaths() []string {
	if runtime.GOOS == "windows" {
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return []string{filepath.Join(local, "CaseAI")}
		}
		return []string{"C:\\ProgramData\\CaseAI"}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return []string{"/var/lib/caseai"}
	}

	if runtime.GOOS == "darwin" {
		return []string{filepath.Join(home, "Library", "Application Support", "CaseAI")}
	}
	return []string{filepath.Join(home, ".local", "share", "caseai")}
}

// DefaultLog is used to create a log location if the usual approach fails
func DefaultLog() string {
	if runtime.GOOS == "windows" {
		return "C:\\ProgramData\\" + LogName + "\\" + LogName + ".log"
	}
	return os.TempDir() + string(os.PathSeparator) + LogName + ".log"
}
