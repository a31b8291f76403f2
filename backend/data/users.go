package data

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/genhopie/CaseAI/backend/db"
	"github.com/genhopie/CaseAI/common/schema"
)

// AddUser adds a new user with credentials. Returns error if username already exists.
func (d *Data) AddUser(user schema.UserCreateRequest) (schema.UserMeta, error) {
	if user.User == "" || user.Password == "" {
		return schema.UserMeta{}, fmt.Errorf("username and password are required")
	}

	// Restrict usernames to a safe character set
	for _, c := range user.User {
		if !strings.ContainsRune(schema.ValidUsernameChars, c) {
			return schema.UserMeta{}, fmt.Errorf("invalid character in username")
		}
	}

	// Check for existing username
	existing, _ := d.GetUserByID(user.User)
	if existing != nil {
		return schema.UserMeta{}, fmt.Errorf("user already exists")
	}

	role := user.Role
	if role == schema.RoleNone {
		role = schema.RoleUser
	}

	now := time.Now()
	meta := schema.UserMeta{
		User:        user.User,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Role:        role,
		Active:      true,
		CreatedAt:   now,
		LastUpdated: now,
	}
	err := d.database.SetData(db.BucketUserMeta, user.User, meta)
	if err != nil {
		return schema.UserMeta{}, err
	}

	// Store the credentials
	err = d.database.SetAuth(user.User, user.Password, role)
	if err != nil {
		// Roll back the metadata so the user can be re-added
		_ = d.database.DeleteData(db.BucketUserMeta, user.User)
		return schema.UserMeta{}, err
	}

	return meta, nil
}

// UpdateUser applies non-empty fields from the request to an existing user.
// Setting Active to false disables the account without deleting it, which
// immediately blocks logins and token refreshes.
func (d *Data) UpdateUser(user string, req schema.UserUpdateRequest) (schema.UserMeta, error) {
	meta, err := d.GetUserByID(user)
	if err != nil {
		return schema.UserMeta{}, fmt.Errorf("user not found")
	}

	changed := false

	if req.DisplayName != "" && req.DisplayName != meta.DisplayName {
		meta.DisplayName = req.DisplayName
		changed = true
	}
	if req.Email != "" && req.Email != meta.Email {
		meta.Email = req.Email
		changed = true
	}
	if req.Role != schema.RoleNone && req.Role != meta.Role {
		meta.Role = req.Role
		changed = true
	}
	if req.Active != nil && *req.Active != meta.Active {
		meta.Active = *req.Active
		changed = true
	}

	if req.Password != "" {
		if err = d.database.SetAuth(user, req.Password, meta.Role); err != nil {
			return schema.UserMeta{}, err
		}
		changed = true
	}

	if !changed {
		return *meta, nil
	}

	// Keep the role and active flag in the auth record in sync so that
	// disabling an account takes effect immediately
	auth, err := d.database.GetAuth(user)
	if err != nil {
		return schema.UserMeta{}, err
	}
	auth.Role = meta.Role
	auth.Active = meta.Active
	if err = d.database.SetAuthInfo(user, auth); err != nil {
		return schema.UserMeta{}, err
	}

	meta.LastUpdated = time.Now()
	if err = d.database.SetData(db.BucketUserMeta, user, meta); err != nil {
		return schema.UserMeta{}, err
	}
	return *meta, nil
}

// GetUserByID retrieves a user by user ID.
func (d *Data) GetUserByID(user string) (*schema.UserMeta, error) {
	var meta schema.UserMeta
	err := d.database.GetData(db.BucketUserMeta, user, &meta)
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// ListUsers returns all users in the database.
func (d *Data) ListUsers() ([]schema.UserMeta, error) {
	var users []schema.UserMeta
	err := d.database.ForEach(db.BucketUserMeta, func(_, value []byte) error {
		var meta schema.UserMeta
		if err := json.Unmarshal(value, &meta); err != nil {
			return err
		}
		users = append(users, meta)
		return nil
	})
	return users, err
}

// UserExists checks if a user exists in the user bucket.
func (d *Data) UserExists(user string) (bool, error) {
	_, err := d.GetUserByID(user)
	if err != nil {
		// If the error is "key not found", return false, nil
		if err.Error() == "key not found" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteUser deletes a user's metadata and credentials.
func (d *Data) DeleteUser(user string) error {
	if _, err := d.GetUserByID(user); err != nil {
		return fmt.Errorf("user not found")
	}

	if err := d.database.DeleteData(db.BucketUserMeta, user); err != nil {
		return err
	}
	return d.database.DeleteAuth(user)
}
