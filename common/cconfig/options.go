/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package cconfig

import (
	"fmt"
	"os"
)

//goland:noinspection GoUnusedExportedFunction
func WithLoad(filename string) func(*CConfig) error {
	return func(c *CConfig) error {
		return c.Load(filename)
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithLoadOrCreate(filename string) func(*CConfig) error {
	return func(c *CConfig) error {
		err := c.Load(filename)
		if err != nil {
			return c.Save(filename)
		}
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithFind(filenames []string) func(*CConfig) error {
	return func(c *CConfig) error {
		// Iterate through the possible configuration files
		for _, filename := range filenames {
			if _, err := os.Stat(filename); err == nil {
				return c.Load(filename)
			}
		}
		return fmt.Errorf("no configuration file found")
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithFindOrCreate(filenames []string) func(*CConfig) error {
	return func(c *CConfig) error {
		// Iterate through the possible configuration files
		for _, filename := range filenames {
			if _, err := os.Stat(filename); err == nil {
				return c.Load(filename)
			}
		}

		// File was not found, so attempt to create the first writable candidate
		for _, filename := range filenames {
			file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
			if err == nil {
				_ = file.Close()
				return c.Save(filename)
			}
		}
		return fmt.Errorf("could not create configuration file")
	}
}
