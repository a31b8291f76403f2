//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package common

const (
	Version = "0.2.1"
	Build   = 14

	// DefaultSecretLength is the number of random bytes used for
	// session secrets and generated signing keys prior to encoding
	DefaultSecretLength = 48
)
