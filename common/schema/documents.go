/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import "time"

// DocumentMeta describes a document stored in the local document store.
// The document content lives on disk under the storage root; StoragePath
// is relative to that root. SHA256 is the hex digest of the stored bytes.
type DocumentMeta struct {
	DocumentID  string    `json:"document_id" example:"d-6f9dcb2e-2e1b-4c3a-8a67-5b3e0d740df6"`
	CaseID      string    `json:"case_id" example:"c-6f9dcb2e-2e1b-4c3a-8a67-5b3e0d740df6"`
	FileName    string    `json:"file_name" example:"contract.pdf"`
	ContentType string    `json:"content_type,omitempty" example:"application/pdf"`
	Size        int64     `json:"size" example:"81920"`
	SHA256      string    `json:"sha256"`
	StoragePath string    `json:"storage_path"`
	UploadedBy  string    `json:"uploaded_by" example:"alice"`
	TimeCreated time.Time `json:"time_created"`
}

type DocumentList struct {
	Documents []DocumentMeta `json:"documents"`
}
