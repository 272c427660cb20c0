// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventStatus tracks the user's participation in a networking event.
type EventStatus string

const (
	EventPlanned    EventStatus = "planned"
	EventRegistered EventStatus = "registered"
	EventAttended   EventStatus = "attended"
	EventCancelled  EventStatus = "cancelled"
)

// EventSource tells where a networking event was imported from.
type EventSource string

const (
	SourceManual     EventSource = "manual"
	SourceEventbrite EventSource = "eventbrite"
)

// NetworkingEvent is a meetup, conference or career fair the user tracks.
type NetworkingEvent struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"user_id" validate:"gt=0"`
	Title      string      `json:"title" validate:"required,max=255"`
	Organizer  string      `json:"organizer,omitempty"`
	Location   string      `json:"location,omitempty"`
	URL        string      `json:"url,omitempty" validate:"omitempty,http_url"`
	StartsAt   time.Time   `json:"starts_at" validate:"required"`
	EndsAt     *time.Time  `json:"ends_at,omitempty" validate:"omitempty,gtefield=StartsAt"`
	Status     EventStatus `json:"status" validate:"oneof=planned registered attended cancelled"`
	Source     EventSource `json:"source" validate:"oneof=manual eventbrite"`
	ExternalID string      `json:"external_id,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// TableName returns the name of the database table for networking events.
func (NetworkingEvent) TableName() string {
	return "networking_events"
}
