package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing token sign key or a
	// non-positive token duration.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing address, a non-positive
	// request timeout or negative throttling values.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTrackerConfigs indicates invalid retry or quota settings.
	ErrInvalidTrackerConfigs = errors.New("invalid tracker configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a malformed cron spec).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidDashboardConfigs indicates missing dashboard target settings.
	ErrInvalidDashboardConfigs = errors.New("invalid dashboard configuration")
)
