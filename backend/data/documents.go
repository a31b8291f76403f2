/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package data

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/genhopie/CaseAI/backend/global"
	"github.com/genhopie/CaseAI/common/schema"
)

// StoreDocument writes document content to the document store and records
// its metadata. The storage path is derived from the case and document IDs
// rather than the client-supplied filename, so path traversal is not
// possible. The SHA256 of the content is stored for later verification.
func (d *Data) StoreDocument(caseID string, fileName string, contentType string, content []byte, uploadedBy string) (schema.DocumentMeta, error) {

	if fileName == "" {
		return schema.DocumentMeta{}, fmt.Errorf("file name is required")
	}

	if !d.database.CaseExists(caseID) {
		return schema.DocumentMeta{}, fmt.Errorf("case not found: %s", caseID)
	}

	maxBytes := int64(d.conf.SC.Get(global.ConfigMaxDocumentMB).Int()) * 1024 * 1024
	if int64(len(content)) > maxBytes {
		return schema.DocumentMeta{}, fmt.Errorf("document exceeds maximum size of %d bytes", maxBytes)
	}

	docID := schema.NewDocumentID()
	docsPath := d.conf.SC.Get(global.ConfigDocsPath).String()

	// One directory per case
	caseDir := filepath.Join(docsPath, caseID)
	if err := os.MkdirAll(caseDir, 0700); err != nil {
		return schema.DocumentMeta{}, fmt.Errorf("failed to create case directory: %w", err)
	}

	fullPath := filepath.Join(caseDir, docID)
	if err := os.WriteFile(fullPath, content, 0600); err != nil {
		return schema.DocumentMeta{}, fmt.Errorf("failed to write document: %w", err)
	}

	meta := schema.DocumentMeta{
		DocumentID:  docID,
		CaseID:      caseID,
		FileName:    filepath.Base(fileName),
		ContentType: contentType,
		Size:        int64(len(content)),
		SHA256:      d.hasher.SHA256Bytes(content).Hex(),
		StoragePath: filepath.Join(caseID, docID),
		UploadedBy:  uploadedBy,
		TimeCreated: time.Now(),
	}

	if err := d.database.SetDocument(meta); err != nil {
		// Don't leave an orphaned file behind
		_ = os.Remove(fullPath)
		return schema.DocumentMeta{}, err
	}

	d.journalEvent(caseID, uploadedBy, schema.JournalEventDocumentAdded,
		map[string]any{"document_id": docID, "file_name": meta.FileName, "sha256": meta.SHA256})

	return meta, nil
}

// GetDocument retrieves document metadata
func (d *Data) GetDocument(documentID string) (schema.DocumentMeta, error) {
	return d.database.GetDocument(documentID)
}

// GetDocumentContent retrieves document metadata and content, verifying
// the stored hash before returning the bytes
func (d *Data) GetDocumentContent(documentID string) (schema.DocumentMeta, []byte, error) {
	meta, err := d.database.GetDocument(documentID)
	if err != nil {
		return schema.DocumentMeta{}, nil, err
	}

	docsPath := d.conf.SC.Get(global.ConfigDocsPath).String()
	content, err := os.ReadFile(filepath.Join(docsPath, meta.StoragePath))
	if err != nil {
		return schema.DocumentMeta{}, nil, fmt.Errorf("failed to read document: %w", err)
	}

	if d.hasher.SHA256Bytes(content).Hex() != meta.SHA256 {
		return schema.DocumentMeta{}, nil, fmt.Errorf("document %s failed hash verification", documentID)
	}

	return meta, content, nil
}

// ListDocuments returns document metadata, optionally filtered by case ID
func (d *Data) ListDocuments(caseID string) ([]schema.DocumentMeta, error) {
	return d.database.ListDocuments(caseID)
}

// DeleteDocument removes a document's content and metadata
func (d *Data) DeleteDocument(documentID string, user string) error {
	meta, err := d.database.GetDocument(documentID)
	if err != nil {
		return err
	}

	docsPath := d.conf.SC.Get(global.ConfigDocsPath).String()
	if err = os.Remove(filepath.Join(docsPath, meta.StoragePath)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove document file: %w", err)
	}

	if err = d.database.DeleteDocument(documentID); err != nil {
		return err
	}

	d.journalEvent(meta.CaseID, user, schema.JournalEventDocumentDeleted,
		map[string]any{"document_id": documentID, "file_name": meta.FileName})

	return nil
}
