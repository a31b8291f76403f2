/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package data

import (
	"fmt"
	"time"

	"github.com/genhopie/CaseAI/common/schema"
)

// AddCase opens a new case and records a journal entry
func (d *Data) AddCase(req schema.CaseCreateRequest, owner string) (schema.CaseMeta, error) {
	if req.Title == "" {
		return schema.CaseMeta{}, fmt.Errorf("case title is required")
	}

	now := time.Now()
	meta := schema.CaseMeta{
		CaseID:       schema.NewCaseID(),
		Title:        req.Title,
		Description:  req.Description,
		Status:       schema.CaseStatusOpen,
		Jurisdiction: req.Jurisdiction,
		Tags:         req.Tags,
		Owner:        owner,
		TimeCreated:  now,
		LastUpdated:  now,
	}

	if err := d.database.SetCase(meta); err != nil {
		return schema.CaseMeta{}, err
	}

	d.journalEvent(meta.CaseID, owner, schema.JournalEventCaseCreated,
		map[string]any{"title": meta.Title})

	return meta, nil
}

// GetCase retrieves a case by ID
func (d *Data) GetCase(caseID string) (schema.CaseMeta, error) {
	return d.database.GetCase(caseID)
}

// ListCases returns all cases
func (d *Data) ListCases() ([]schema.CaseMeta, error) {
	return d.database.ListCases()
}

// UpdateCase applies non-empty fields from the request to an existing case
// and records a journal entry describing what changed
func (d *Data) UpdateCase(caseID string, req schema.CaseUpdateRequest, user string) (schema.CaseMeta, error) {
	meta, err := d.database.GetCase(caseID)
	if err != nil {
		return schema.CaseMeta{}, err
	}

	changes := make(map[string]any)

	if req.Title != "" && req.Title != meta.Title {
		meta.Title = req.Title
		changes["title"] = req.Title
	}
	if req.Description != "" && req.Description != meta.Description {
		meta.Description = req.Description
		changes["description"] = req.Description
	}
	if req.Status != "" && req.Status != meta.Status {
		if !schema.ValidCaseStatus(req.Status) {
			return schema.CaseMeta{}, fmt.Errorf("invalid case status: %s", req.Status)
		}
		meta.Status = req.Status
		changes["status"] = req.Status
	}
	if req.Jurisdiction != "" && req.Jurisdiction != meta.Jurisdiction {
		meta.Jurisdiction = req.Jurisdiction
		changes["jurisdiction"] = req.Jurisdiction
	}
	if req.Tags != nil {
		meta.Tags = req.Tags
		changes["tags"] = req.Tags
	}

	if len(changes) == 0 {
		return meta, nil
	}

	meta.LastUpdated = time.Now()
	if err = d.database.SetCase(meta); err != nil {
		return schema.CaseMeta{}, err
	}

	d.journalEvent(caseID, user, schema.JournalEventCaseUpdated, changes)
	return meta, nil
}

// DeleteCase removes a case, its documents, and its journal entries.
// The deletion itself is recorded in the general journal so the audit
// trail survives the case.
func (d *Data) DeleteCase(caseID string, user string) error {
	meta, err := d.database.GetCase(caseID)
	if err != nil {
		return err
	}

	// Remove all documents belonging to the case
	docs, err := d.database.ListDocuments(caseID)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if err = d.DeleteDocument(doc.DocumentID, user); err != nil {
			return fmt.Errorf("failed to delete document %s: %w", doc.DocumentID, err)
		}
	}

	if err = d.database.DeleteCase(caseID); err != nil {
		return err
	}

	// Remove the case journal, ignore errors if it never existed
	_ = d.database.DeleteCaseJournal(caseID)

	d.journalEvent("", user, schema.JournalEventCaseDeleted,
		map[string]any{"case_id": caseID, "title": meta.Title})

	return nil
}
