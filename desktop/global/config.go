/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/genhopie/CaseAI/common/cconfig"
	"github.com/genhopie/CaseAI/common/interfaces"
	"github.com/genhopie/CaseAI/common/schema"
)

type DesktopConfig struct {
	C  interfaces.Config     // Config object
	DC interfaces.Parameters // Desktop configuration
}

// Config resolves the data directory, creates the configuration object,
// sets defaults, and loads the configuration from the file system.
func Config() (*DesktopConfig, error) {
	var err error
	c := &DesktopConfig{}

	// Resolve the data directory first - the config file lives inside it
	dPath := os.Getenv(schema.EnvDataDir)
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
		return &DesktopConfig{}, fmt.Errorf("unable to determine or create data directory")
	}

	// Make sure it exists even if it came from the environment
	if !cconfig.CreateDir(dPath) {
		return &DesktopConfig{}, fmt.Errorf("unable to open or create %s", dPath)
	}

	c.C, err = cconfig.New(cconfig.WithLoadOrCreate(filepath.Join(dPath, LogName+".conf")))
	if err != nil {
		return &DesktopConfig{}, err
	}

	// Set constraints, including default values
	c.DC = setDefaults(c.C)

	// Check for logfile and if not set one
	logFile := c.DC.Get(ConfigLogFile).String()
	if logFile == "" {
		lPath := cconfig.CreateSubDir(dPath, "logs")
		if lPath == "" {
			// fall back to the default
			logFile = DefaultLog()
		} else {
			logFile = lPath + string(os.PathSeparator) + LogName + ".log"
		}
		c.DC.Set(ConfigLogFile, logFile)
	}

	// Attempt to checkpoint the config
	err = c.C.Checkpoint()
	if err != nil {
		return &DesktopConfig{}, fmt.Errorf("unable to checkpoint config: %w", err)
	}
	return c, err
}

func (c *DesktopConfig) Checkpoint() error {
	return c.C.Checkpoint()
}

// ResourceDir resolves the bundled resource directory. The environment
// variable takes precedence and must point at an existing directory.
// Otherwise the resources directory next to the executable is used. An
// error here is fatal to startup because the application bundle cannot be
// located without it.
func ResourceDir() (string, error) {

	if dir := os.Getenv(EnvResourceDir); dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return "", fmt.Errorf("%s does not exist: %w", EnvResourceDir, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("%s is not a directory: %s", EnvResourceDir, dir)
		}
		return dir, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("unable to determine executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), ResourceDirName), nil
}
