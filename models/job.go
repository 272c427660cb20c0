// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// JobStatus is the stage of an application in the hiring pipeline.
type JobStatus string

const (
	JobWishlist     JobStatus = "wishlist"
	JobApplied      JobStatus = "applied"
	JobInterviewing JobStatus = "interviewing"
	JobOffer        JobStatus = "offer"
	JobRejected     JobStatus = "rejected"
	JobWithdrawn    JobStatus = "withdrawn"
)

// Job is a single tracked job application.
type Job struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id" validate:"gt=0"`
	Company     string     `json:"company" validate:"required,max=255"`
	Title       string     `json:"title" validate:"required,max=255"`
	Location    string     `json:"location,omitempty"`
	URL         string     `json:"url,omitempty" validate:"omitempty,http_url"`
	Status      JobStatus  `json:"status" validate:"oneof=wishlist applied interviewing offer rejected withdrawn"`
	SalaryRange string     `json:"salary_range,omitempty"`
	Description string     `json:"description,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	AppliedAt   *time.Time `json:"applied_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName returns the name of the database table for jobs.
func (Job) TableName() string {
	return "jobs"
}
