/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package journal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/genhopie/CaseAI/cli/communications"
	"github.com/genhopie/CaseAI/cli/display"
	"github.com/genhopie/CaseAI/cli/login"
	"github.com/genhopie/CaseAI/cli/util"
	"github.com/genhopie/CaseAI/common/schema"
)

func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "journal",
		Aliases: []string{"audit"},
		Short:   "journal functions",
		Long:    "query the append-only journal and add note entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("a subcommand is required\n")
			}
			return fmt.Errorf("unknown subcommand: %s\n", args[0])
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get [case=<case_id>] [start=<unix time>] [end=<unix time>] [type=<event type>]",
		Short: "get journal entries",
		Long:  "get journal entries, optionally filtered by case, time range, and event type",
		RunE: func(cmd *cobra.Command, args []string) error {
			return journalGet(util.NewNVPairs(args))
		},
	})

	cmd.AddCommand(noteCmd())

	return cmd
}

func journalGet(pairs *util.NVPairs) error {
	c := communications.New(login.Login())
	display.ErrorWrapper(display.JournalResp(c.GetQuery(schema.EndpointJournal, pairs)))
	return nil
}

func noteCmd() *cobra.Command {
	var caseID string

	cmd := &cobra.Command{
		Use:   "note <text>",
		Short: "Add a note entry to the journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return journalNote(caseID, args[0])
		},
	}

	cmd.Flags().StringVarP(&caseID, "case", "c", "", "Case ID (optional, defaults to the general journal)")

	return cmd
}

// journalNote posts a note entry to the journal.
func journalNote(caseID, text string) error {
	req := schema.JournalCreateRequest{
		CaseID:    caseID,
		EventType: schema.JournalEventNote,
		Payload:   map[string]any{"note": text},
	}
	c := communications.New(login.Login())
	display.ErrorWrapper(display.AnyResp(c.Post(schema.EndpointJournal, req)))
	return nil
}
