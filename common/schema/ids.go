//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

import (
	"strings"

	"github.com/google/uuid"
)

// Object IDs carry a one-letter prefix so logs and API payloads are
// self-describing.

//goland:noinspection GoUnusedExportedFunction
func NewCaseID() string {
	return "c-" + uuid.New().String()
}

//goland:noinspection GoUnusedExportedFunction
func NewDocumentID() string {
	return "d-" + uuid.New().String()
}

//goland:noinspection GoUnusedExportedFunction
func NewJournalID() string {
	return "j-" + uuid.New().String()
}

//goland:noinspection GoUnusedExportedFunction
func NewTokenID() string {
	return "T-" + uuid.New().String()
}

// IsCaseID checks the prefix only, not the UUID body
func IsCaseID(id string) bool {
	return strings.HasPrefix(id, "c-")
}

func IsDocumentID(id string) bool {
	return strings.HasPrefix(id, "d-")
}

func IsJournalID(id string) bool {
	return strings.HasPrefix(id, "j-")
}
