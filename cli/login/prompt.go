/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package login

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptUser prompts for a username on stdin
func promptUser() (string, error) {
	reader := bufio.NewReader(os.Stdin)

	// Keep prompting until a non-empty value is provided
	for {
		fmt.Print("Username: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("error reading username: %w", err)
		}

		username := strings.TrimSpace(input)
		if username != "" {
			return username, nil
		}
		fmt.Println("Username cannot be empty. Please try again.")
	}
}

// promptPassword prompts for a password without echoing it
func promptPassword() (string, error) {

	// Keep prompting until a non-empty value is provided
	for {
		fmt.Print("Password: ")
		passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		fmt.Println() // Print newline after password input

		password := string(passwordBytes)
		if password != "" {
			return password, nil
		}
		fmt.Println("Password cannot be empty. Please try again.")
	}
}
