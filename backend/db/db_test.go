//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/genhopie/CaseAI/common/null"
	"github.com/genhopie/CaseAI/common/schema"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "test.db"), null.Logger())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(d.Close)
	return d
}

func TestAuthRoundTrip(t *testing.T) {
	d := openTestDB(t)

	if err := d.SetAuth("alice", "secret-password", schema.RoleAdmin); err != nil {
		t.Fatalf("SetAuth failed: %v", err)
	}

	role, err := d.CheckAuth("alice", "secret-password")
	if err != nil {
		t.Fatalf("CheckAuth failed: %v", err)
	}
	if role != schema.RoleAdmin {
		t.Errorf("expected role %d, got %d", schema.RoleAdmin, role)
	}

	// Wrong password must fail and bump the fail count
	if _, err = d.CheckAuth("alice", "wrong"); err == nil {
		t.Error("expected error for wrong password")
	}

	info, err := d.GetAuth("alice")
	if err != nil {
		t.Fatalf("GetAuth failed: %v", err)
	}
	if info.FailCount != 1 {
		t.Errorf("expected fail count 1, got %d", info.FailCount)
	}

	if !d.UserActive("alice") {
		t.Error("expected alice to be active")
	}
	if d.UserActive("nobody") {
		t.Error("expected unknown user to be inactive")
	}
}

func TestGenerateVerifyHash(t *testing.T) {
	hash, err := GenerateHash("hunter2")
	if err != nil {
		t.Fatalf("GenerateHash failed: %v", err)
	}

	ok, err := VerifyHash("hunter2", hash)
	if err != nil {
		t.Fatalf("VerifyHash failed: %v", err)
	}
	if !ok {
		t.Error("expected hash to verify")
	}

	ok, err = VerifyHash("hunter3", hash)
	if err != nil {
		t.Fatalf("VerifyHash failed: %v", err)
	}
	if ok {
		t.Error("expected wrong password to fail")
	}
}

func TestCaseCRUD(t *testing.T) {
	d := openTestDB(t)

	meta := schema.CaseMeta{
		CaseID:      schema.NewCaseID(),
		Title:       "Smith v. Jones",
		Status:      schema.CaseStatusOpen,
		Owner:       "alice",
		TimeCreated: time.Now(),
		LastUpdated: time.Now(),
	}

	if err := d.SetCase(meta); err != nil {
		t.Fatalf("SetCase failed: %v", err)
	}

	if !d.CaseExists(meta.CaseID) {
		t.Error("expected case to exist")
	}

	got, err := d.GetCase(meta.CaseID)
	if err != nil {
		t.Fatalf("GetCase failed: %v", err)
	}
	if got.Title != meta.Title {
		t.Errorf("expected title %q, got %q", meta.Title, got.Title)
	}

	cases, err := d.ListCases()
	if err != nil {
		t.Fatalf("ListCases failed: %v", err)
	}
	if len(cases) != 1 {
		t.Errorf("expected 1 case, got %d", len(cases))
	}

	if err = d.DeleteCase(meta.CaseID); err != nil {
		t.Fatalf("DeleteCase failed: %v", err)
	}
	if d.CaseExists(meta.CaseID) {
		t.Error("expected case to be deleted")
	}
}

func TestDocumentFilterByCase(t *testing.T) {
	d := openTestDB(t)

	caseA := schema.NewCaseID()
	caseB := schema.NewCaseID()

	for _, cid := range []string{caseA, caseA, caseB} {
		meta := schema.DocumentMeta{
			DocumentID:  schema.NewDocumentID(),
			CaseID:      cid,
			FileName:    "file.pdf",
			TimeCreated: time.Now(),
		}
		if err := d.SetDocument(meta); err != nil {
			t.Fatalf("SetDocument failed: %v", err)
		}
	}

	docs, err := d.ListDocuments(caseA)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("expected 2 documents for case, got %d", len(docs))
	}

	all, err := d.ListDocuments("")
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 documents total, got %d", len(all))
	}
}

func TestJournalAppendAndQuery(t *testing.T) {
	d := openTestDB(t)

	caseID := schema.NewCaseID()
	now := time.Now()

	for i, et := range []string{schema.JournalEventCaseCreated, schema.JournalEventNote} {
		entry := schema.NewJournalEntry()
		entry.CaseID = caseID
		entry.User = "alice"
		entry.EventType = et
		entry.Time = now.Add(time.Duration(i) * time.Second)
		if err := d.AddJournalEntry(entry); err != nil {
			t.Fatalf("AddJournalEntry failed: %v", err)
		}
	}

	entries, err := d.GetJournalEntries(caseID, 0, 0, "")
	if err != nil {
		t.Fatalf("GetJournalEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	// IDs are assigned on write
	for _, e := range entries {
		if e.JournalID == "" {
			t.Error("expected journal ID to be assigned")
		}
	}

	// Filter by event type
	notes, err := d.GetJournalEntries(caseID, 0, 0, schema.JournalEventNote)
	if err != nil {
		t.Fatalf("GetJournalEntries failed: %v", err)
	}
	if len(notes) != 1 {
		t.Errorf("expected 1 note, got %d", len(notes))
	}

	// Entries with no case land in the general journal
	general := schema.NewJournalEntry()
	general.User = "alice"
	general.EventType = schema.JournalEventNote
	general.Time = now
	if err = d.AddJournalEntry(general); err != nil {
		t.Fatalf("AddJournalEntry failed: %v", err)
	}

	entries, err = d.GetJournalEntries("", 0, 0, "")
	if err != nil {
		t.Fatalf("GetJournalEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 general entry, got %d", len(entries))
	}
}
