/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package user

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/genhopie/CaseAI/cli/communications"
	"github.com/genhopie/CaseAI/cli/display"
	"github.com/genhopie/CaseAI/cli/login"
	"github.com/genhopie/CaseAI/common/schema"
)

// Register returns the root user command with subcommands.
func Register() *cobra.Command {
	userCmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Manage users",
		Long:    "User management commands: list, add, passwd, disable, enable, delete",
	}

	userCmd.AddCommand(listCmd())
	userCmd.AddCommand(addCmd())
	userCmd.AddCommand(passwdCmd())
	userCmd.AddCommand(disableCmd())
	userCmd.AddCommand(enableCmd())
	userCmd.AddCommand(deleteCmd())

	return userCmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return userList()
		},
	}
}

// userList calls GET /api/v1/user and displays the result.
func userList() error {
	c := communications.New(login.Login())
	status, body, err := c.Get(schema.EndpointUser)
	return display.UserResp(status, body, err)
}

// addCmd returns the 'user add' command.
func addCmd() *cobra.Command {
	var user, password, displayName, email string
	var admin bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return userAdd(user, password, displayName, email, admin)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "User (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	cmd.Flags().StringVarP(&displayName, "display-name", "d", "", "Display name (optional)")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email (optional)")
	cmd.Flags().BoolVar(&admin, "admin", false, "Grant the admin role")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// userAdd calls POST /api/v1/user to add a new user.
func userAdd(user, password, displayName, email string, admin bool) error {
	if user == "" || password == "" {
		return errors.New("user and password are required")
	}

	role := schema.RoleUser
	if admin {
		role = schema.RoleAdmin
	}

	req := schema.UserCreateRequest{
		User:        user,
		Password:    password,
		DisplayName: displayName,
		Email:       email,
		Role:        role,
	}
	c := communications.New(login.Login())
	display.ErrorWrapper(display.AnyResp(c.Post(schema.EndpointUser, req)))
	return nil
}

// passwdCmd returns the 'user passwd' command.
func passwdCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "passwd <user_id>",
		Short: "Set a user's password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := schema.UserUpdateRequest{Password: password}
			c := communications.New(login.Login())
			display.ErrorWrapper(display.AnyResp(c.Put(schema.EndpointUser+"/"+args[0], req)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "New password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// disableCmd returns the 'user disable' command.
func disableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <user_id>",
		Short: "Disable a user account without deleting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return userSetActive(args[0], false)
		},
	}
}

// enableCmd returns the 'user enable' command.
func enableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <user_id>",
		Short: "Re-enable a disabled user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return userSetActive(args[0], true)
		},
	}
}

// userSetActive calls PUT /api/v1/user/{id} to set the active flag.
func userSetActive(userID string, active bool) error {
	if userID == "" {
		return errors.New("user ID is required")
	}
	req := schema.UserUpdateRequest{Active: &active}
	c := communications.New(login.Login())
	display.ErrorWrapper(display.AnyResp(c.Put(schema.EndpointUser+"/"+userID, req)))
	return nil
}

// deleteCmd returns the 'user delete' command.
func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user_id>",
		Short: "Delete a user by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return userDelete(args[0])
		},
	}
}

// userDelete calls DELETE /api/v1/user/{id} to delete a user.
func userDelete(userID string) error {
	if userID == "" {
		return errors.New("user ID is required")
	}
	c := communications.New(login.Login())
	display.ErrorWrapper(display.GenericResp(c.Delete(schema.EndpointUser + "/" + userID)))
	return nil
}
