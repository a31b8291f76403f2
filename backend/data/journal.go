/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package data

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/genhopie/CaseAI/common/schema"
)

// AddJournalEntry validates and appends a journal entry. The payload hash
// is always computed here, never accepted from the caller.
func (d *Data) AddJournalEntry(req schema.JournalCreateRequest, user string) (schema.JournalEntry, error) {
	if req.EventType == "" {
		return schema.JournalEntry{}, fmt.Errorf("event type is required")
	}

	if req.CaseID != "" && !d.database.CaseExists(req.CaseID) {
		return schema.JournalEntry{}, fmt.Errorf("case not found: %s", req.CaseID)
	}

	entry := schema.NewJournalEntry()
	entry.JournalID = schema.NewJournalID()
	entry.CaseID = req.CaseID
	entry.User = user
	entry.EventType = req.EventType
	entry.Time = time.Now()

	if req.Payload != nil {
		entry.Payload = req.Payload
	}

	hash, err := d.payloadHash(entry.Payload)
	if err != nil {
		return schema.JournalEntry{}, err
	}
	entry.PayloadHash = hash

	if err = d.database.AddJournalEntry(entry); err != nil {
		return schema.JournalEntry{}, err
	}
	return entry, nil
}

// GetJournalEntries returns journal entries for a case (or the general
// journal when caseID is empty) within the specified time range
func (d *Data) GetJournalEntries(caseID string, startTime, endTime int64, eventType string) ([]schema.JournalEntry, error) {
	return d.database.GetJournalEntries(caseID, startTime, endTime, eventType)
}

// VerifyJournalEntry recomputes the payload hash and compares it to the
// stored value. A mismatch means the payload was altered after write.
func (d *Data) VerifyJournalEntry(entry schema.JournalEntry) (bool, error) {
	hash, err := d.payloadHash(entry.Payload)
	if err != nil {
		return false, err
	}
	return hash == entry.PayloadHash, nil
}

// journalEvent records an internal event in the journal. Failures are
// logged rather than returned because the triggering operation has
// already succeeded.
func (d *Data) journalEvent(caseID string, user string, eventType string, payload map[string]any) {
	_, err := d.AddJournalEntry(schema.JournalCreateRequest{
		CaseID:    caseID,
		EventType: eventType,
		Payload:   payload,
	}, user)
	if err != nil {
		d.logger.Errorf(2110, "failed to record journal entry: %s", err.Error())
	}
}

// payloadHash serializes the payload and returns its SHA256 hex digest.
// JSON marshalling of Go maps sorts keys, so the digest is stable for
// equal payloads.
func (d *Data) payloadHash(payload map[string]any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to serialize payload: %w", err)
	}
	return d.hasher.SHA256Bytes(data).Hex(), nil
}
