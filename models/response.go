package models

import "time"

// Response is the JSON envelope returned by every REST endpoint.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ListFilter narrows list queries over user-owned resources.
type ListFilter struct {
	// Limit caps the number of returned rows. Zero means the default page size.
	Limit uint64 `json:"limit,omitempty"`

	// Offset skips the given number of rows.
	Offset uint64 `json:"offset,omitempty"`

	// Status filters resources that carry a status column (jobs, events).
	Status string `json:"status,omitempty"`
}

// AppInfo describes the running server build.
type AppInfo struct {
	Version   string    `json:"version"`
	StartedAt time.Time `json:"started_at"`
	Uptime    string    `json:"uptime"`
}
