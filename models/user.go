// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id,omitempty"`

	// Login is the unique user login identifier.
	Login string `json:"login" validate:"required,max=64"`

	// Name is the display name of the user.
	Name string `json:"name,omitempty"`

	// Password is the plaintext password received from the client.
	// It is cleared right after hashing and never persisted.
	Password string `json:"password,omitempty" validate:"required,min=8,max=72"`

	// PasswordHash is the bcrypt hash stored in the database.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
