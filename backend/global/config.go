/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/genhopie/CaseAI/common/cconfig"
	"github.com/genhopie/CaseAI/common/interfaces"
)

type BackendConfig struct {
	C  interfaces.Config     // Config object
	SC interfaces.Parameters // Backend configuration
	SP interfaces.Parameters // Backend private configuration
}

// Config resolves the data directory, creates the configuration object,
// sets defaults, and loads the configuration from the file system.
//
// The data directory is taken from LCAI_DATA_DIR if set, otherwise the
// first per-user default that exists or can be created. Failure to
// resolve a data directory is fatal because nothing can be persisted
// without it.
func Config() (*BackendConfig, error) {
	var err error
	c := &BackendConfig{}

	// Resolve the data directory first - the config file lives inside it
	dPath := os.Getenv(EnvDataDir)
	if dPath == "" {
		for _, path := range DefaultDataPaths() {
			// CreateDir will return true if the directory
			// exists or was successfully created
			if cconfig.CreateDir(path) {
				dPath = path
				break
			}
		}
	}

	// Check for success
	if dPath == "" {
		return &BackendConfig{}, fmt.Errorf("unable to determine or create data directory")
	}

	// Make sure it exists even if it came from the environment
	if !cconfig.CreateDir(dPath) {
		return &BackendConfig{}, fmt.Errorf("unable to open or create %s", dPath)
	}

	c.C, err = cconfig.New(cconfig.WithLoadOrCreate(filepath.Join(dPath, LogName+".conf")))
	if err != nil {
		return &BackendConfig{}, err
	}

	// Set constraints, including default values
	// SC is the general backend configuration set
	// SP is the private backend configuration set
	c.SC, c.SP = setDefaults(c.C)

	// Save the path to the config
	c.SC.Set(ConfigDataPath, dPath)

	// Make sure there is a database path
	dbPath := c.SC.Get(ConfigDBPath).String()
	if dbPath == "" {
		dbPath = cconfig.CreateSubDir(dPath, "db")
		if dbPath == "" {
			return &BackendConfig{}, fmt.Errorf("unable to create database directory in %s", dPath)
		}
		c.SC.Set(ConfigDBPath, dbPath)
	}

	// Make sure there is a document storage path
	docPath := c.SC.Get(ConfigDocsPath).String()
	if docPath == "" {
		docPath = cconfig.CreateSubDir(dPath, "documents")
		if docPath == "" {
			return &BackendConfig{}, fmt.Errorf("unable to create document directory in %s", dPath)
		}
		c.SC.Set(ConfigDocsPath, docPath)
	}

	// Check for logfile and if not set one
	logFile := c.SC.Get(ConfigLogFile).String()
	if logFile == "" {
		lPath := cconfig.CreateSubDir(dPath, "logs")
		if lPath == "" {
			// fall back to the default
			logFile = DefaultLog()
		} else {
			logFile = lPath + string(os.PathSeparator) + LogName + ".log"
		}
		c.SC.Set(ConfigLogFile, logFile)
	}

	// The shell passes the listen port in the environment
	if port := os.Getenv(EnvPort); port != "" {
		if p, convErr := strconv.Atoi(port); convErr == nil && p > 0 && p < 65536 {
			c.SC.Set(ConfigListen, fmt.Sprintf("127.0.0.1:%d", p))
		} else {
			return &BackendConfig{}, fmt.Errorf("invalid %s value: %s", EnvPort, port)
		}
	}

	// Make sure that critical directories exist
	// They could exist in the config file but have been deleted
	if !cconfig.CreateDir(dbPath) {
		return &BackendConfig{}, fmt.Errorf("unable to open or create %s", dbPath)
	}

	if !cconfig.CreateDir(docPath) {
		return &BackendConfig{}, fmt.Errorf("unable to open or create %s", docPath)
	}

	// Attempt to checkpoint the config
	err = c.C.Checkpoint()
	if err != nil {
		return &BackendConfig{}, fmt.Errorf("unable to checkpoint config: %w", err)
	}
	return c, err
}

func (c *BackendConfig) Checkpoint() error {
	return c.C.Checkpoint()
}
