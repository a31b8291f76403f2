//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// See LICENSE file for details
//

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genhopie/CaseAI/cli/functions/cases"
	"github.com/genhopie/CaseAI/cli/functions/docs"
	"github.com/genhopie/CaseAI/cli/functions/journal"
	"github.com/genhopie/CaseAI/cli/functions/ping"
	"github.com/genhopie/CaseAI/cli/functions/user"
	"github.com/genhopie/CaseAI/cli/functions/version"
	"github.com/genhopie/CaseAI/cli/global"
)

func main() {
	var err error

	// Get the name of this binary, eliminating any path information
	progName := os.Args[0]
	progName = progName[strings.LastIndex(progName, "/")+1:]

	// Initialize the root command
	rootCmd := &cobra.Command{
		Use:   progName,
		Short: global.Description,
		Long:  global.LongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("A subcommand is required\n")
		},
	}

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add the functions
	rootCmd.AddCommand(cases.Register())
	rootCmd.AddCommand(docs.Register())
	rootCmd.AddCommand(journal.Register())
	rootCmd.AddCommand(ping.Register())
	rootCmd.AddCommand(user.Register())
	rootCmd.AddCommand(version.Register())

	// Execute the CLI
	err = rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
