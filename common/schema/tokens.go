//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

//goland:noinspection ALL
const (
	TokenPurposeAccess  = "access"
	TokenPurposeRefresh = "refresh"
)

// RefreshRequest carries a refresh token to the refresh endpoint
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// NewRefreshRequest creates a RefreshRequest
//
//goland:noinspection GoUnusedExportedFunction
func NewRefreshRequest(token string) RefreshRequest {
	return RefreshRequest{RefreshToken: token}
}
