//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package data

import (
	"testing"

	"github.com/genhopie/CaseAI/common/schema"
)

func TestCaseCreateAndUpdate(t *testing.T) {
	d := newTestData(t)

	meta, err := d.AddCase(schema.CaseCreateRequest{
		Title:        "Smith v. Jones",
		Jurisdiction: "ON",
		Tags:         []string{"civil", "contract"},
	}, "alice")
	if err != nil {
		t.Fatalf("AddCase failed: %v", err)
	}
	if meta.Status != schema.CaseStatusOpen {
		t.Errorf("expected new case to be open, got %s", meta.Status)
	}
	if meta.Jurisdiction != "ON" || len(meta.Tags) != 2 {
		t.Error("jurisdiction or tags not stored")
	}

	updated, err := d.UpdateCase(meta.CaseID, schema.CaseUpdateRequest{
		Status:       schema.CaseStatusPending,
		Jurisdiction: "BC",
		Tags:         []string{"civil"},
	}, "alice")
	if err != nil {
		t.Fatalf("UpdateCase failed: %v", err)
	}
	if updated.Status != schema.CaseStatusPending {
		t.Errorf("expected status %s, got %s", schema.CaseStatusPending, updated.Status)
	}
	if updated.Jurisdiction != "BC" {
		t.Errorf("expected jurisdiction BC, got %s", updated.Jurisdiction)
	}
	if len(updated.Tags) != 1 {
		t.Errorf("expected 1 tag, got %d", len(updated.Tags))
	}
}

func TestUpdateCaseRejectsInvalidStatus(t *testing.T) {
	d := newTestData(t)

	meta, err := d.AddCase(schema.CaseCreateRequest{Title: "Test"}, "alice")
	if err != nil {
		t.Fatalf("AddCase failed: %v", err)
	}

	if _, err = d.UpdateCase(meta.CaseID, schema.CaseUpdateRequest{Status: "bogus"}, "alice"); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestAddCaseRequiresTitle(t *testing.T) {
	d := newTestData(t)

	if _, err := d.AddCase(schema.CaseCreateRequest{}, "alice"); err == nil {
		t.Error("expected error for missing title")
	}
}
