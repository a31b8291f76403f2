/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import "time"

const (
	CaseStatusOpen     = "open"
	CaseStatusPending  = "pending"
	CaseStatusClosed   = "closed"
	CaseStatusArchived = "archived"
)

// CaseMeta defines a legal case file
type CaseMeta struct {
	CaseID       string    `json:"case_id" example:"c-6f9dcb2e-2e1b-4c3a-8a67-5b3e0d740df6"`
	Title        string    `json:"title" example:"Smith v. Jones"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status" example:"open"`
	Jurisdiction string    `json:"jurisdiction,omitempty" example:"ON"`
	Tags         []string  `json:"tags,omitempty"`
	Owner        string    `json:"owner" example:"alice"`
	TimeCreated  time.Time `json:"time_created"`
	LastUpdated  time.Time `json:"last_updated"`
}

type CaseList struct {
	Cases []CaseMeta `json:"cases"`
}

// CaseCreateRequest is used to open a new case
type CaseCreateRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Jurisdiction string   `json:"jurisdiction,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// CaseUpdateRequest carries mutable case fields. Empty fields are left
// unchanged. A nil Tags slice leaves tags untouched, an empty one clears
// them.
type CaseUpdateRequest struct {
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	Status       string   `json:"status,omitempty"`
	Jurisdiction string   `json:"jurisdiction,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// ValidCaseStatus reports whether s is a recognized case status
func ValidCaseStatus(s string) bool {
	switch s {
	case CaseStatusOpen, CaseStatusPending, CaseStatusClosed, CaseStatusArchived:
		return true
	}
	return false
}
