/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package db

import (
	"encoding/json"

	"github.com/genhopie/CaseAI/common/schema"
)

// SetDocument stores document metadata keyed by document ID.
// The document content itself lives on disk, not in the database.
func (d *DB) SetDocument(meta schema.DocumentMeta) error {
	return d.SetData(BucketDocuments, validateKey(meta.DocumentID), meta)
}

// GetDocument retrieves document metadata for a given document ID
func (d *DB) GetDocument(documentID string) (schema.DocumentMeta, error) {
	var meta schema.DocumentMeta
	err := d.GetData(BucketDocuments, validateKey(documentID), &meta)
	return meta, err
}

// ListDocuments returns document metadata, optionally filtered by case ID.
// An empty caseID returns all documents.
func (d *DB) ListDocuments(caseID string) ([]schema.DocumentMeta, error) {
	var docs []schema.DocumentMeta
	err := d.ForEach(BucketDocuments, func(_, value []byte) error {
		var meta schema.DocumentMeta
		if err := json.Unmarshal(value, &meta); err != nil {
			return err
		}
		if caseID == "" || meta.CaseID == caseID {
			docs = append(docs, meta)
		}
		return nil
	})
	return docs, err
}

// DeleteDocument removes document metadata for a given document ID
func (d *DB) DeleteDocument(documentID string) error {
	return d.DeleteData(BucketDocuments, validateKey(documentID))
}
