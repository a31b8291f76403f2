//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

//goland:noinspection ALL
const (
	EndpointPing      = "/api/v1/ping"
	EndpointLogin     = "/api/v1/login"
	EndpointRefresh   = "/api/v1/refresh"
	EndpointCases     = "/api/v1/cases"
	EndpointDocuments = "/api/v1/documents"
	EndpointJournal   = "/api/v1/journal"
	EndpointUser      = "/api/v1/user"
)

//goland:noinspection ALL
const (
	APIStatusOK      = "ok"
	APIStatusError   = "error"
	APIStatusExpired = "expired"
)
