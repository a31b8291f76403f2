/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package db

import (
	"encoding/json"

	"github.com/genhopie/CaseAI/common/schema"
)

// SetCase stores case metadata keyed by case ID
func (d *DB) SetCase(meta schema.CaseMeta) error {
	return d.SetData(BucketCases, validateKey(meta.CaseID), meta)
}

// GetCase retrieves case metadata for a given case ID
func (d *DB) GetCase(caseID string) (schema.CaseMeta, error) {
	var meta schema.CaseMeta
	err := d.GetData(BucketCases, validateKey(caseID), &meta)
	return meta, err
}

// CaseExists checks if a case exists
func (d *DB) CaseExists(caseID string) bool {
	exists, err := d.KeyExists(BucketCases, validateKey(caseID))
	if err != nil {
		return false
	}
	return exists
}

// ListCases returns all cases in the database
func (d *DB) ListCases() ([]schema.CaseMeta, error) {
	var cases []schema.CaseMeta
	err := d.ForEach(BucketCases, func(_, value []byte) error {
		var meta schema.CaseMeta
		if err := json.Unmarshal(value, &meta); err != nil {
			return err
		}
		cases = append(cases, meta)
		return nil
	})
	return cases, err
}

// DeleteCase removes case metadata for a given case ID
func (d *DB) DeleteCase(caseID string) error {
	return d.DeleteData(BucketCases, validateKey(caseID))
}
