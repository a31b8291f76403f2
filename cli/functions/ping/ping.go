/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package ping

import (
	"github.com/spf13/cobra"

	"github.com/genhopie/CaseAI/cli/communications"
	"github.com/genhopie/CaseAI/cli/display"
	"github.com/genhopie/CaseAI/cli/login"
	"github.com/genhopie/CaseAI/common/schema"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "ping the backend",
		Long:  "ping the backend, which also requires login",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute()
		},
	}
}

func execute() error {

	// Create communications object
	c := communications.New(login.Login())

	// Send the request to the backend and display the result
	display.ErrorWrapper(display.GenericResp(c.Get(schema.EndpointPing)))
	return nil
}
