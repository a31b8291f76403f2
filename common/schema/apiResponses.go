/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// By design, there is a high level of redundancy in the API response structures. However, more specific
// structures make the API easier to understand and provide relevant examples for client developers.

// All API responses must include the Status and Code fields.

// APIAnyResponse can be used by a client to deserialize any API response. However, when data is included,
// a more specific struct may make it easier for the client.
type APIAnyResponse struct {
	Status       string `json:"status"`                  // API status response - see schema/apiMeta.go
	Code         int    `json:"code"`                    // HTTP status code
	Details      string `json:"details,omitempty"`       // Optional details about the response
	AccessToken  string `json:"access_token,omitempty"`  // JWT access token during authentication and refresh
	RefreshToken string `json:"refresh_token,omitempty"` // JWT refresh token during authentication
	Data         any    `json:"data,omitempty"`          // optional data
}

// All API 4xx and 5xx responses have the same structure.

type API400 struct {
	Status  string `json:"status" example:"error"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details" example:"bad request"`
}

type API401 struct {
	Status  string `json:"status" example:"error"`
	Code    int    `json:"code" example:"401"`
	Details string `json:"details" example:"authentication failed"`
}

type API404 struct {
	Status  string `json:"status" example:"error"`
	Code    int    `json:"code" example:"404"`
	Details string `json:"details" example:"object not found"`
}

type API500 struct {
	Status  string `json:"status" example:"error"`
	Code    int    `json:"code" example:"500"`
	Details string `json:"details" example:"internal server error"`
}

// APIGenericResponse is used for successful responses that don't require a specific structure
type APIGenericResponse struct {
	Status  string `json:"status" example:"ok"`                           // API status response - see schema/apiMeta.go
	Code    int    `json:"code" example:"200"`                            // HTTP status code
	Details string `json:"details,omitempty" example:"request processed"` // Optional response details
}

type APILoginResponse struct {
	Status       string `json:"status" example:"ok"`                   // Text Status
	Code         int    `json:"code" example:"200"`                    // HTTP status code
	AccessToken  string `json:"access_token,omitempty" example:"jwt"`  // JWT access token
	RefreshToken string `json:"refresh_token,omitempty" example:"jwt"` // JWT refresh token
}

type APITokenRefreshResponse struct {
	Status      string `json:"status" example:"ok"`                  // Text Status
	Code        int    `json:"code" example:"200"`                   // HTTP status code
	AccessToken string `json:"access_token,omitempty" example:"jwt"` // JWT access token
}

type APICaseResponse struct {
	Status  string   `json:"status" example:"ok"`
	Code    int      `json:"code" example:"200"`
	Details string   `json:"details,omitempty" example:"case retrieved"`
	Data    CaseMeta `json:"data"`
}

type APICaseListResponse struct {
	Status  string   `json:"status" example:"ok"`
	Code    int      `json:"code" example:"200"`
	Details string   `json:"details,omitempty" example:"cases"`
	Data    CaseList `json:"data"`
}

type APIDocumentResponse struct {
	Status  string       `json:"status" example:"ok"`
	Code    int          `json:"code" example:"200"`
	Details string       `json:"details,omitempty" example:"document stored"`
	Data    DocumentMeta `json:"data"`
}

type APIDocumentListResponse struct {
	Status  string       `json:"status" example:"ok"`
	Code    int          `json:"code" example:"200"`
	Details string       `json:"details,omitempty" example:"documents"`
	Data    DocumentList `json:"data"`
}

type APIJournalResponse struct {
	Status  string       `json:"status" example:"ok"`
	Code    int          `json:"code" example:"200"`
	Details string       `json:"details,omitempty" example:"journal entry recorded"`
	Data    JournalEntry `json:"data"`
}

type APIJournalListResponse struct {
	Status  string      `json:"status" example:"ok"`
	Code    int         `json:"code" example:"200"`
	Details string      `json:"details,omitempty" example:"journal entries"`
	Data    JournalList `json:"data"`
}

type APIUserListResponse struct {
	Status  string   `json:"status" example:"ok"`
	Code    int      `json:"code" example:"200"`
	Details string   `json:"details,omitempty" example:"users"`
	Data    UserList `json:"data"`
}
