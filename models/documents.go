// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CoverLetter is a markdown cover letter, optionally tied to a job.
type CoverLetter struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id" validate:"gt=0"`
	JobID     *int64    `json:"job_id,omitempty"`
	Title     string    `json:"title" validate:"required,max=255"`
	Content   string    `json:"content" validate:"required"`
	Generated bool      `json:"generated"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table for cover letters.
func (CoverLetter) TableName() string {
	return "cover_letters"
}

// Resume is a stored resume version.
type Resume struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id" validate:"gt=0"`
	Title     string    `json:"title" validate:"required,max=255"`
	Summary   string    `json:"summary,omitempty"`
	Content   string    `json:"content" validate:"required_without=FileURL"`
	FileURL   string    `json:"file_url,omitempty" validate:"omitempty,http_url"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table for resumes.
func (Resume) TableName() string {
	return "resumes"
}

// CoverLetterRequest asks the generator to draft a cover letter.
type CoverLetterRequest struct {
	JobID    *int64 `json:"job_id,omitempty"`
	Company  string `json:"company" validate:"required,max=255"`
	Title    string `json:"title" validate:"required,max=255"`
	JobNotes string `json:"job_notes,omitempty"`
	ResumeID *int64 `json:"resume_id,omitempty"`
	Resume   string `json:"resume,omitempty"`
	Tone     string `json:"tone,omitempty" validate:"omitempty,oneof=professional enthusiastic concise friendly"`
}
