//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package data

import (
	"testing"

	"github.com/genhopie/CaseAI/common/schema"
)

func TestJournalPayloadHash(t *testing.T) {
	d := newTestData(t)

	entry, err := d.AddJournalEntry(schema.JournalCreateRequest{
		EventType: schema.JournalEventNote,
		Payload:   map[string]any{"note": "client called"},
	}, "alice")
	if err != nil {
		t.Fatalf("AddJournalEntry failed: %v", err)
	}
	if entry.PayloadHash == "" {
		t.Fatal("expected payload hash to be set")
	}

	ok, err := d.VerifyJournalEntry(entry)
	if err != nil {
		t.Fatalf("VerifyJournalEntry failed: %v", err)
	}
	if !ok {
		t.Error("expected entry to verify")
	}

	// Tampering with the payload must be detected
	entry.Payload["note"] = "client never called"
	ok, err = d.VerifyJournalEntry(entry)
	if err != nil {
		t.Fatalf("VerifyJournalEntry failed: %v", err)
	}
	if ok {
		t.Error("expected tampered entry to fail verification")
	}
}

func TestJournalRequiresEventType(t *testing.T) {
	d := newTestData(t)

	if _, err := d.AddJournalEntry(schema.JournalCreateRequest{}, "alice"); err == nil {
		t.Error("expected error for missing event type")
	}
}

func TestJournalRejectsUnknownCase(t *testing.T) {
	d := newTestData(t)

	_, err := d.AddJournalEntry(schema.JournalCreateRequest{
		CaseID:    schema.NewCaseID(),
		EventType: schema.JournalEventNote,
	}, "alice")
	if err == nil {
		t.Error("expected error for unknown case")
	}
}

func TestCaseOperationsAreJournaled(t *testing.T) {
	d := newTestData(t)

	meta, err := d.AddCase(schema.CaseCreateRequest{Title: "Smith v. Jones"}, "alice")
	if err != nil {
		t.Fatalf("AddCase failed: %v", err)
	}

	entries, err := d.GetJournalEntries(meta.CaseID, 0, 0, schema.JournalEventCaseCreated)
	if err != nil {
		t.Fatalf("GetJournalEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 case_created entry, got %d", len(entries))
	}
	if entries[0].User != "alice" {
		t.Errorf("expected user alice, got %s", entries[0].User)
	}

	// Deletion is recorded in the general journal
	if err = d.DeleteCase(meta.CaseID, "alice"); err != nil {
		t.Fatalf("DeleteCase failed: %v", err)
	}

	general, err := d.GetJournalEntries("", 0, 0, schema.JournalEventCaseDeleted)
	if err != nil {
		t.Fatalf("GetJournalEntries failed: %v", err)
	}
	if len(general) != 1 {
		t.Errorf("expected 1 case_deleted entry, got %d", len(general))
	}
}
