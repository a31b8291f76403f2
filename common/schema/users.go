package schema

import "time"

// UserMeta defines the structure for a user account.
type UserMeta struct {
	User        string    `json:"user" example:"alice"`
	DisplayName string    `json:"display_name,omitempty" example:"Alice Smith"`
	Email       string    `json:"email,omitempty" example:"alice@example.com"`
	Role        int       `json:"role" example:"4"`
	Active      bool      `json:"active" example:"true"`
	CreatedAt   time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	LastUpdated time.Time `json:"last_updated" example:"2023-01-01T00:00:00Z"`
}

// UserList is used to return a list of users.
// swagger:model UserList
type UserList struct {
	Users  []UserMeta `json:"users"`
	Status string     `json:"status" example:"ok"`
	Code   int        `json:"code" example:"200"`
}

// UserCreateRequest is used to create a new user.
type UserCreateRequest struct {
	User        string `json:"user"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Role        int    `json:"role,omitempty"`
}

// UserUpdateRequest carries mutable user fields. Empty fields are left
// unchanged. A nil Active pointer leaves the active flag untouched, so an
// account can be disabled without deleting it.
type UserUpdateRequest struct {
	Password    string `json:"password,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Role        int    `json:"role,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

// UserCreateResponse is returned after creating a user.
type UserCreateResponse struct {
	User   UserMeta `json:"user"`
	Status string   `json:"status"`
	Code   int      `json:"code"`
}

// UserDeleteResponse is returned after deleting a user.
type UserDeleteResponse struct {
	Status string `json:"status"`
	Code   int    `json:"code"`
}

// LoginRequest carries user credentials to the login endpoint
type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// NewLoginRequest creates a LoginRequest
//
//goland:noinspection GoUnusedExportedFunction
func NewLoginRequest(user string, password string) LoginRequest {
	return LoginRequest{User: user, Password: password}
}
