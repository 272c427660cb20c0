// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Contact is a person in the user's professional network.
type Contact struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id" validate:"gt=0"`
	Name            string     `json:"name" validate:"required,max=255"`
	Email           string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone           string     `json:"phone,omitempty"`
	Company         string     `json:"company,omitempty"`
	Role            string     `json:"role,omitempty"`
	LinkedInURL     string     `json:"linkedin_url,omitempty" validate:"omitempty,http_url"`
	Notes           string     `json:"notes,omitempty"`
	LastContactedAt *time.Time `json:"last_contacted_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName returns the name of the database table for contacts.
func (Contact) TableName() string {
	return "contacts"
}
