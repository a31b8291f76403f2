/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package cconfig holds the application configuration as named parameter
// sets that are serialized to a JSON file.
package cconfig

import (
	"fmt"

	"github.com/genhopie/CaseAI/common/cconfig/params"
	"github.com/genhopie/CaseAI/common/interfaces"
)

// Ensure CConfig implements the Config interface
var _ interfaces.Config = (*CConfig)(nil)

// CConfig holds all configuration data
type CConfig struct {
	file string                   // Path to configuration file
	Sets map[string]params.Params `json:"sets"`
}

// Null returns an empty CConfig instance for testing
//
//goland:noinspection GoUnusedExportedFunction
func Null() interfaces.Config {
	return &CConfig{
		file: "",
		Sets: make(map[string]params.Params)}
}

// New returns a CConfig instance
//
//goland:noinspection GoUnusedExportedFunction
func New(options ...func(*CConfig) error) (interfaces.Config, error) {
	c := &CConfig{
		file: "",
		Sets: make(map[string]params.Params)}

	// Process options (see options.go)
	for _, op := range options {
		err := op(c)
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Init initializes the configuration data
func (c *CConfig) Init() {
	for key := range c.Sets {
		c.Sets[key] = params.New()
	}
}

// Save the configuration to the specified file
func (c *CConfig) Save(filename string) error {
	if filename != "" {
		c.file = filename
	}

	if c.file == "" {
		return fmt.Errorf("a filename is required")
	}
	return c.saveFile()
}

// Delete the configuration file
func (c *CConfig) Delete(filename string) error {
	if filename != "" {
		c.file = filename
	}

	if c.file == "" {
		return fmt.Errorf("a filename is required")
	}
	return c.deleteFile()
}

// Load the configuration from the specified file
func (c *CConfig) Load(filename string) error {
	if filename != "" {
		c.file = filename
	}

	if c.file == "" {
		return fmt.Errorf("a filename is required")
	}
	return c.loadFile()
}

// Checkpoint saves the configuration to the last loaded file
func (c *CConfig) Checkpoint() error {
	if c.file == "" {
		return fmt.Errorf("checkpoint requires a loaded configuration")
	}
	return c.Save("")
}

// GetSets returns the configuration sets as a map
func (c *CConfig) GetSets() map[string]interfaces.Parameters {
	sets := make(map[string]interfaces.Parameters)
	for key, value := range c.Sets {
		sets[key] = &value
	}
	return sets
}

// GetSet returns a pointer to a specific configuration set
func (c *CConfig) GetSet(set string) interfaces.Parameters {
	if value, ok := c.Sets[set]; ok {
		return &value
	}
	return nil
}

func (c *CConfig) NewSet(key string) interfaces.Parameters {
	if _, ok := c.Sets[key]; !ok {
		c.Sets[key] = params.New()
	}
	temp := c.Sets[key]
	return &temp
}
