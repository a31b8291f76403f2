/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package docs

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/genhopie/CaseAI/cli/communications"
	"github.com/genhopie/CaseAI/cli/display"
	"github.com/genhopie/CaseAI/cli/login"
	"github.com/genhopie/CaseAI/cli/util"
	"github.com/genhopie/CaseAI/common/schema"
)

// Register returns the root doc command with subcommands.
func Register() *cobra.Command {
	docCmd := &cobra.Command{
		Use:     "doc",
		Aliases: []string{"docs", "document", "documents"},
		Short:   "Manage case documents",
		Long:    "Document commands: import, list, show, download, delete",
	}

	docCmd.AddCommand(importCmd())
	docCmd.AddCommand(listCmd())
	docCmd.AddCommand(showCmd())
	docCmd.AddCommand(downloadCmd())
	docCmd.AddCommand(deleteCmd())

	return docCmd
}

func importCmd() *cobra.Command {
	var caseID string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a document into a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return docImport(caseID, args[0])
		},
	}

	cmd.Flags().StringVarP(&caseID, "case", "c", "", "Case ID (required)")
	_ = cmd.MarkFlagRequired("case")

	return cmd
}

// docImport uploads a file to POST /api/v1/documents as a multipart form.
func docImport(caseID, filePath string) error {
	if caseID == "" {
		return errors.New("case ID is required")
	}
	c := communications.New(login.Login())
	display.ErrorWrapper(display.DocResp(
		c.PostFile(schema.EndpointDocuments, map[string]string{"case_id": caseID}, "file", filePath)))
	return nil
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [case=<case_id>]",
		Short: "List documents, optionally filtered by case",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := communications.New(login.Login())
			display.ErrorWrapper(display.DocListResp(
				c.GetQuery(schema.EndpointDocuments, util.NewNVPairs(args))))
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <document_id>",
		Short: "Show document metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := communications.New(login.Login())
			display.ErrorWrapper(display.DocResp(c.Get(schema.EndpointDocuments + "/" + args[0])))
			return nil
		},
	}
}

func downloadCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download <document_id>",
		Short: "Download document content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return docDownload(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to the document ID)")

	return cmd
}

// docDownload saves the document content from GET /api/v1/documents/{id}/download.
func docDownload(docID, output string) error {
	if output == "" {
		output = filepath.Base(docID)
	}
	c := communications.New(login.Login())
	status, err := c.GetFile(schema.EndpointDocuments+"/"+docID+"/download", output)
	if err != nil {
		return fmt.Errorf("download failed (HTTP %d): %w", status, err)
	}
	fmt.Printf("Saved to %s\n", output)
	return nil
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <document_id>",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := communications.New(login.Login())
			display.ErrorWrapper(display.GenericResp(c.Delete(schema.EndpointDocuments + "/" + args[0])))
			return nil
		},
	}
}
