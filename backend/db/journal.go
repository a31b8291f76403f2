//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package db

import (
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/genhopie/CaseAI/common/schema"
)

// journalGeneral is the child bucket for entries that are not tied to a case
const journalGeneral = "general"

// AddJournalEntry appends an entry to the journal. Each case has its own
// child bucket and the entry time plus the journal ID is used as the key,
// so entries iterate in chronological order. The journal is append-only;
// there is deliberately no update or delete.
func (d *DB) AddJournalEntry(entry schema.JournalEntry) error {
	return d.db.Update(func(tx *bbolt.Tx) error {

		// Get or create the parent bucket
		parentBucket, err := tx.CreateBucketIfNotExists([]byte(BucketJournal))
		if err != nil {
			return fmt.Errorf("failed to create parent bucket: %w", err)
		}

		// Get or create the child bucket for the case
		child := entry.CaseID
		if child == "" {
			child = journalGeneral
		}
		childBucket, err := parentBucket.CreateBucketIfNotExists([]byte(child))
		if err != nil {
			return fmt.Errorf("failed to create child bucket: %w", err)
		}

		// Generate an ID if it is not set
		if entry.JournalID == "" {
			entry.JournalID = schema.NewJournalID()
		}

		// Create the key using entry time and journal ID
		key := fmt.Sprintf("%d-%s", entry.Time.Unix(), entry.JournalID)

		// Serialize the entry
		data, err := d.serialize(entry)
		if err != nil {
			return fmt.Errorf("failed to serialize journal entry: %w", err)
		}

		// Store the serialized entry in the child bucket
		return childBucket.Put([]byte(key), data)
	})
}

// GetJournalEntries returns journal entries for a case within a specified time range.
// An empty caseID returns the general journal. An empty eventType matches all types.
func (d *DB) GetJournalEntries(caseID string, startTime, endTime int64, eventType string) ([]schema.JournalEntry, error) {
	var entries []schema.JournalEntry

	child := caseID
	if child == "" {
		child = journalGeneral
	}

	err := d.db.View(func(tx *bbolt.Tx) error {
		// Get the parent bucket
		parentBucket := tx.Bucket([]byte(BucketJournal))
		if parentBucket == nil {
			return fmt.Errorf("parent bucket not found")
		}

		// Get the child bucket for the case
		childBucket := parentBucket.Bucket([]byte(child))
		if childBucket == nil {
			// No entries yet
			return nil
		}

		// Iterate over the entries in the child bucket
		return childBucket.ForEach(func(k, v []byte) error {
			// Parse the entry time from the key
			var entryTime int64
			_, err := fmt.Sscanf(string(k), "%d-", &entryTime)
			if err != nil {
				return fmt.Errorf("failed to parse entry time: %w", err)
			}

			// Check if the entry is within the specified time range
			if (startTime == 0 || entryTime >= startTime) && (endTime == 0 || entryTime <= endTime) {
				var entry schema.JournalEntry
				err := d.deserialize(v, &entry)
				if err != nil {
					return fmt.Errorf("failed to deserialize journal entry: %w", err)
				}
				if eventType == "" || entry.EventType == eventType {
					entries = append(entries, entry)
				}
			}
			return nil
		})
	})
	return entries, err
}

// DeleteCaseJournal removes the child bucket for a case, removing all of
// its journal entries. Used only when the case itself is deleted.
func (d *DB) DeleteCaseJournal(caseID string) error {
	return d.db.Update(func(tx *bbolt.Tx) error {

		// Get the parent bucket
		parentBucket := tx.Bucket([]byte(BucketJournal))
		if parentBucket == nil {
			return fmt.Errorf("parent bucket not found")
		}

		// Delete the child bucket for the case
		return parentBucket.DeleteBucket([]byte(caseID))
	})
}
