// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// defaults returns the values used when no other source sets a field.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-job-tracker",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
			LogLevel:      "info",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			RateLimitRPS:   10,
			RateLimitBurst: 20,
		},
		Storage: Storage{
			Redis: Redis{Prefix: "jobtracker:"},
		},
		Tracker: Tracker{
			MaxRetries: 3,
			BaseDelay:  500 * time.Millisecond,
			MaxDelay:   10 * time.Second,
		},
		Integrations: Integrations{
			Timeout: 15 * time.Second,
			Gemini:  Gemini{Model: "gemini-2.5-flash"},
			GitHub:  GitHub{BaseURL: "https://api.github.com"},
			BLS:     BLS{BaseURL: "https://api.bls.gov"},
			Eventbrite: Eventbrite{
				BaseURL: "https://www.eventbriteapi.com",
			},
		},
		Workers: Workers{
			RetentionDays:      90,
			RetentionSchedule:  "0 3 * * *",
			HealthSyncSchedule: "* * * * *",
		},
		Dashboard: Dashboard{
			ServerAddress:   "http://localhost:8080",
			RefreshInterval: 5 * time.Second,
			LogFile:         "dashboard.log",
		},
	}
}
