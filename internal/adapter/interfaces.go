// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients of the external HTTP APIs the job
// tracker talks to.
//
// Third-party clients ([GitHubAdapter], [BLSAdapter], [EventbriteAdapter],
// [TextGenerator]) return [StatusError] values so that callers can read the
// observed HTTP status with [StatusCode] and decide about retries.
// [ServerAdapter] is the client of the job tracker's own REST API used by
// the terminal dashboard.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-job-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// GitHubAdapter reads public GitHub data.
type GitHubAdapter interface {
	// Repositories lists public repositories of user, most recently
	// updated first.
	Repositories(ctx context.Context, user string) ([]models.Repository, error)
}

// BLSAdapter reads Bureau of Labor Statistics time series.
type BLSAdapter interface {
	// Series fetches the observations of the given series ids between the
	// two years, both inclusive. Zero years let the API choose.
	Series(ctx context.Context, seriesIDs []string, startYear, endYear int) ([]models.SalarySeries, error)
}

// EventbriteAdapter reads events published by Eventbrite organizations.
type EventbriteAdapter interface {
	// OrganizationEvents lists live events of the organization, soonest
	// first, converted to networking events.
	OrganizationEvents(ctx context.Context, organizationID string) ([]models.NetworkingEvent, error)
}

// TextGenerator produces text from a prompt with a hosted language model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ServerAdapter is the client of the job tracker REST API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every request.
	SetToken(token string)

	// Token returns the stored bearer token.
	Token() string

	// Login authenticates with the server and stores the returned token.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// QuotaStatuses returns the live quota of every tracked service.
	QuotaStatuses(ctx context.Context) ([]models.QuotaStatus, error)

	// Alerts returns the most recent alerts.
	Alerts(ctx context.Context, unacknowledgedOnly bool) ([]models.Alert, error)

	// AcknowledgeAlert marks the alert as seen.
	AcknowledgeAlert(ctx context.Context, id int64) (models.Alert, error)

	// ResetService clears the quota counters of service.
	ResetService(ctx context.Context, service string) error
}
