// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Repository is a public GitHub repository used to enrich resumes.
type Repository struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"html_url"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stargazers_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SalaryPoint is a single observation of a BLS time series.
type SalaryPoint struct {
	Year   string `json:"year"`
	Period string `json:"period"`
	Label  string `json:"label"`
	Value  string `json:"value"`
}

// SalarySeries is a BLS series with its observations.
type SalarySeries struct {
	SeriesID string        `json:"series_id"`
	Points   []SalaryPoint `json:"points"`
}
