//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package data

import (
	"bytes"
	"testing"

	"github.com/genhopie/CaseAI/common/schema"
)

func TestDocumentStoreAndRetrieve(t *testing.T) {
	d := newTestData(t)

	caseMeta, err := d.AddCase(schema.CaseCreateRequest{Title: "Smith v. Jones"}, "alice")
	if err != nil {
		t.Fatalf("AddCase failed: %v", err)
	}

	content := []byte("retainer agreement text")
	meta, err := d.StoreDocument(caseMeta.CaseID, "retainer.txt", "text/plain", content, "alice")
	if err != nil {
		t.Fatalf("StoreDocument failed: %v", err)
	}
	if meta.SHA256 == "" {
		t.Fatal("expected SHA256 to be set")
	}
	if meta.Size != int64(len(content)) {
		t.Errorf("expected size %d, got %d", len(content), meta.Size)
	}

	gotMeta, gotContent, err := d.GetDocumentContent(meta.DocumentID)
	if err != nil {
		t.Fatalf("GetDocumentContent failed: %v", err)
	}
	if !bytes.Equal(gotContent, content) {
		t.Error("retrieved content does not match")
	}
	if gotMeta.FileName != "retainer.txt" {
		t.Errorf("expected filename retainer.txt, got %s", gotMeta.FileName)
	}

	if err = d.DeleteDocument(meta.DocumentID, "alice"); err != nil {
		t.Fatalf("DeleteDocument failed: %v", err)
	}
	if _, _, err = d.GetDocumentContent(meta.DocumentID); err == nil {
		t.Error("expected error retrieving deleted document")
	}
}

func TestStoreDocumentRejectsUnknownCase(t *testing.T) {
	d := newTestData(t)

	_, err := d.StoreDocument(schema.NewCaseID(), "x.txt", "text/plain", []byte("x"), "alice")
	if err == nil {
		t.Error("expected error for unknown case")
	}
}

func TestStoreDocumentStripsPath(t *testing.T) {
	d := newTestData(t)

	caseMeta, err := d.AddCase(schema.CaseCreateRequest{Title: "Test"}, "alice")
	if err != nil {
		t.Fatalf("AddCase failed: %v", err)
	}

	meta, err := d.StoreDocument(caseMeta.CaseID, "../../etc/passwd", "text/plain", []byte("x"), "alice")
	if err != nil {
		t.Fatalf("StoreDocument failed: %v", err)
	}
	if meta.FileName != "passwd" {
		t.Errorf("expected path to be stripped from filename, got %s", meta.FileName)
	}
}

func TestDeleteCaseRemovesDocuments(t *testing.T) {
	d := newTestData(t)

	caseMeta, err := d.AddCase(schema.CaseCreateRequest{Title: "Test"}, "alice")
	if err != nil {
		t.Fatalf("AddCase failed: %v", err)
	}

	meta, err := d.StoreDocument(caseMeta.CaseID, "a.txt", "text/plain", []byte("a"), "alice")
	if err != nil {
		t.Fatalf("StoreDocument failed: %v", err)
	}

	if err = d.DeleteCase(caseMeta.CaseID, "alice"); err != nil {
		t.Fatalf("DeleteCase failed: %v", err)
	}

	if _, err = d.GetDocument(meta.DocumentID); err == nil {
		t.Error("expected document metadata to be removed with the case")
	}
}
