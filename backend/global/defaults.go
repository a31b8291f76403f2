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
	ConfigServerSet      = "backend_config"
	ConfigLogFile        = "log_file"
	ConfigLogStdout      = "log_stdout"
	ConfigLogRetention   = "log_retention"
	ConfigListen         = "listen"
	ConfigDataPath       = "data_path"
	ConfigDocsPath       = "docs_path"
	ConfigDBPath         = "db_path"
	ConfigHTTPTimeout    = "http_timeout"
	ConfigHTTPIdle       = "http_idle_timeout"
	ConfigMaxConcurrent  = "max_concurrent"
	ConfigPenaltyBoxMin  = "penalty_box_min"
	ConfigPenaltyBoxMax  = "penalty_box_max"
	ConfigHandlerTimeout = "handler_timeout"
	ConfigAccessLife     = "access_token_life"
	ConfigRefreshLife    = "refresh_token_life"
	ConfigMaxDocumentMB  = "max_document_mb"

	ConfigPrivate = "backend_private"
	ConfigJWTKey  = "jwt_key"
)

// setDefaults makes sure the sets exist, sets default values, and constraints
func setDefaults(c interfaces.Config) (interfaces.Parameters, interfaces.Parameters) {

	// Backend configuration set
	sc := c.NewSet(ConfigServerSet)
	sc.SetConstraint(ConfigLogFile, 0, 0, "")                 // no log file by default
	sc.SetConstraint(ConfigLogStdout, 0, 0, true)             // by default log to stdout
	sc.SetConstraint(ConfigLogRetention, 1, 0, 90)            // days
	sc.SetConstraint(ConfigListen, 0, 0, "127.0.0.1:8787")    // loopback only
	sc.SetConstraint(ConfigDataPath, 0, 0, "")                // data path (base directory for data)
	sc.SetConstraint(ConfigDocsPath, 0, 0, "")                // document storage path
	sc.SetConstraint(ConfigDBPath, 0, 0, "")                  // database path
	sc.SetConstraint(ConfigHTTPTimeout, 0, 0, 30)             // seconds
	sc.SetConstraint(ConfigHTTPIdle, 0, 0, 30)                // seconds
	sc.SetConstraint(ConfigMaxConcurrent, 0, 0, 50)           // concurrent connections, others wait
	sc.SetConstraint(ConfigPenaltyBoxMin, 0, 0, 1000)         // Minimum penalty box time in milliseconds
	sc.SetConstraint(ConfigPenaltyBoxMax, 0, 0, 5000)         // Maximum penalty box time in milliseconds
	sc.SetConstraint(ConfigHandlerTimeout, 0, 0, 30)          // seconds
	sc.SetConstraint(ConfigAccessLife, 0, 0, 720)             // minutes
	sc.SetConstraint(ConfigRefreshLife, 0, 0, 1440)           // minutes
	sc.SetConstraint(ConfigMaxDocumentMB, 1, 0, 100)          // maximum document upload size

	// Protected configuration items
	sp := c.NewSet(ConfigPrivate)
	sp.SetConstraint(ConfigJWTKey, 0, 0, "")

	// Return the sets
	return sc, sp
}

// DefaultDataPaths returns candidate data directories in preference order.
// The backend runs in the user session, so these are per-user locations.
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
