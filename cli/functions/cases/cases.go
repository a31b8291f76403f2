/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package cases

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/genhopie/CaseAI/cli/communications"
	"github.com/genhopie/CaseAI/cli/display"
	"github.com/genhopie/CaseAI/cli/login"
	"github.com/genhopie/CaseAI/common/schema"
)

// Register returns the root case command with subcommands.
func Register() *cobra.Command {
	caseCmd := &cobra.Command{
		Use:     "case",
		Aliases: []string{"cases"},
		Short:   "Manage cases",
		Long:    "Case management commands: create, list, show, update, archive, delete",
	}

	caseCmd.AddCommand(createCmd())
	caseCmd.AddCommand(listCmd())
	caseCmd.AddCommand(showCmd())
	caseCmd.AddCommand(updateCmd())
	caseCmd.AddCommand(archiveCmd())
	caseCmd.AddCommand(deleteCmd())

	return caseCmd
}

func createCmd() *cobra.Command {
	var title, description, jurisdiction string
	var tags []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new case",
		RunE: func(cmd *cobra.Command, args []string) error {
			return caseCreate(title, description, jurisdiction, tags)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Case title (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description (optional)")
	cmd.Flags().StringVarP(&jurisdiction, "jurisdiction", "j", "", "Jurisdiction (optional)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag, may be repeated (optional)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// caseCreate calls POST /api/v1/cases to open a new case.
func caseCreate(title, description, jurisdiction string, tags []string) error {
	if title == "" {
		return errors.New("title is required")
	}
	req := schema.CaseCreateRequest{
		Title:        title,
		Description:  description,
		Jurisdiction: jurisdiction,
		Tags:         tags,
	}
	c := communications.New(login.Login())
	display.ErrorWrapper(display.CaseResp(c.Post(schema.EndpointCases, req)))
	return nil
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := communications.New(login.Login())
			display.ErrorWrapper(display.CaseListResp(c.Get(schema.EndpointCases)))
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <case_id>",
		Short: "Show a case by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := communications.New(login.Login())
			display.ErrorWrapper(display.CaseResp(c.Get(schema.EndpointCases + "/" + args[0])))
			return nil
		},
	}
}

func updateCmd() *cobra.Command {
	var title, description, status, jurisdiction string
	var tags []string

	cmd := &cobra.Command{
		Use:   "update <case_id>",
		Short: "Update case fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := schema.CaseUpdateRequest{
				Title:        title,
				Description:  description,
				Status:       status,
				Jurisdiction: jurisdiction,
				Tags:         tags,
			}
			c := communications.New(login.Login())
			display.ErrorWrapper(display.CaseResp(c.Put(schema.EndpointCases+"/"+args[0], req)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&status, "status", "s", "", "New status (open, pending, closed, archived)")
	cmd.Flags().StringVarP(&jurisdiction, "jurisdiction", "j", "", "New jurisdiction")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Replacement tag, may be repeated")

	return cmd
}

func archiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <case_id>",
		Short: "Archive a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := schema.CaseUpdateRequest{Status: schema.CaseStatusArchived}
			c := communications.New(login.Login())
			display.ErrorWrapper(display.CaseResp(c.Put(schema.EndpointCases+"/"+args[0], req)))
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <case_id>",
		Short: "Delete a case and its documents (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := communications.New(login.Login())
			display.ErrorWrapper(display.GenericResp(c.Delete(schema.EndpointCases + "/" + args[0])))
			return nil
		},
	}
}
