/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import "time"

//goland:noinspection ALL
const (
	JournalEventCaseCreated     = "case_created"
	JournalEventCaseUpdated     = "case_updated"
	JournalEventCaseDeleted     = "case_deleted"
	JournalEventDocumentAdded   = "document_added"
	JournalEventDocumentDeleted = "document_deleted"
	JournalEventNote            = "note"
)

// JournalEntry is an append-only audit record. PayloadHash is the SHA256
// hex digest of the serialized payload at write time so later tampering
// with the payload can be detected.
type JournalEntry struct {
	JournalID   string         `json:"journal_id" example:"j-6f9dcb2e-2e1b-4c3a-8a67-5b3e0d740df6"`
	CaseID      string         `json:"case_id,omitempty"`
	User        string         `json:"user" example:"alice"`
	EventType   string         `json:"event_type" example:"note"`
	Payload     map[string]any `json:"payload,omitempty"`
	PayloadHash string         `json:"payload_hash"`
	Time        time.Time      `json:"time"`
}

type JournalList struct {
	Entries []JournalEntry `json:"entries"`
}

// NewJournalEntry initializes the payload map to avoid nil map errors
func NewJournalEntry() JournalEntry {
	return JournalEntry{
		Payload: make(map[string]any),
	}
}

// JournalCreateRequest is used to append a journal entry via the API
type JournalCreateRequest struct {
	CaseID    string         `json:"case_id,omitempty"`
	EventType string         `json:"event_type"`
	Payload   map[string]any `json:"payload,omitempty"`
}
