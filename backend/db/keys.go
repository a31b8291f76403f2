/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package db

import (
	"regexp"
)

// validateKey removes any invalid characters (anything other than a-z, A-Z, 0-9, -) from the input string
func validateKey(key string) string {
	validChars := regexp.MustCompile(`[^a-zA-Z0-9-]`)
	return validChars.ReplaceAllString(key, "")
}
