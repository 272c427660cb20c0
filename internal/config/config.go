// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-job-tracker/models"
)

// StructuredConfig is the top-level configuration container of the job
// tracker. It is populated by merging environment variables, command-line
// flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, version and log level.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database and the optional Redis settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network addresses, timeouts and inbound throttling.
	Server Server `envPrefix:"SERVER_"`

	// Tracker holds the third-party quota and retry settings.
	Tracker Tracker `envPrefix:"TRACKER_"`

	// Integrations holds credentials and endpoints of third-party APIs.
	Integrations Integrations `envPrefix:"INTEGRATIONS_"`

	// Workers holds cron schedules of background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Dashboard holds the settings of the terminal usage dashboard.
	Dashboard Dashboard `envPrefix:"DASHBOARD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the optional path to a .env file loaded before the
	// environment is parsed. Populated via the DOTENV environment variable.
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the REST API, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health endpoint.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling time of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimitRPS is the sustained per-client request rate. Zero disables
	// inbound throttling.
	// Env: SERVER_RATE_LIMIT_RPS
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS"`

	// RateLimitBurst is the per-client burst size.
	// Env: SERVER_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`

	// TrustProxy takes the client address from X-Real-IP or
	// X-Forwarded-For. Enable only behind a reverse proxy that sets them.
	// Env: SERVER_TRUST_PROXY
	TrustProxy bool `env:"TRUST_PROXY"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the optional shared counter store settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is a PostgreSQL URL ("postgres://...") or a SQLite DSN
	// ("sqlite://path/to/file.db" or "file:...").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds connection settings of the Redis counter store. When URL is
// empty quota counters stay in process memory.
type Redis struct {
	// Env: STORAGE_REDIS_URL
	URL string `env:"URL"`

	// Prefix is prepended to every counter key.
	// Env: STORAGE_REDIS_PREFIX
	Prefix string `env:"PREFIX"`
}

// Tracker holds the API usage tracking settings.
type Tracker struct {
	// MaxRetries is the number of retries after the first failed attempt.
	// Env: TRACKER_MAX_RETRIES
	MaxRetries uint64 `env:"MAX_RETRIES"`

	// BaseDelay is the first exponential backoff delay.
	// Env: TRACKER_BASE_DELAY
	BaseDelay time.Duration `env:"BASE_DELAY"`

	// MaxDelay caps a single backoff delay.
	// Env: TRACKER_MAX_DELAY
	MaxDelay time.Duration `env:"MAX_DELAY"`

	// Services overrides per-service limits. JSON only.
	Services map[string]models.ServiceLimits `env:"-"`
}

// Integrations holds third-party API settings.
type Integrations struct {
	// Timeout bounds every outbound request.
	// Env: INTEGRATIONS_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	Gemini     Gemini     `envPrefix:"GEMINI_"`
	GitHub     GitHub     `envPrefix:"GITHUB_"`
	BLS        BLS        `envPrefix:"BLS_"`
	Eventbrite Eventbrite `envPrefix:"EVENTBRITE_"`
}

// Gemini holds the cover-letter generator settings.
type Gemini struct {
	// Env: INTEGRATIONS_GEMINI_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: INTEGRATIONS_GEMINI_MODEL
	Model string `env:"MODEL"`
}

// GitHub holds the GitHub REST API settings.
type GitHub struct {
	// Env: INTEGRATIONS_GITHUB_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// Env: INTEGRATIONS_GITHUB_TOKEN
	Token string `env:"TOKEN"`
}

// BLS holds the Bureau of Labor Statistics API settings.
type BLS struct {
	// Env: INTEGRATIONS_BLS_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// Env: INTEGRATIONS_BLS_API_KEY
	APIKey string `env:"API_KEY"`
}

// Eventbrite holds the Eventbrite API settings.
type Eventbrite struct {
	// Env: INTEGRATIONS_EVENTBRITE_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// Env: INTEGRATIONS_EVENTBRITE_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RetentionDays is how long usage aggregates and errors are kept.
	// Env: WORKERS_RETENTION_DAYS
	RetentionDays int `env:"RETENTION_DAYS"`

	// RetentionSchedule is the cron spec of the purge job.
	// Env: WORKERS_RETENTION_SCHEDULE
	RetentionSchedule string `env:"RETENTION_SCHEDULE"`

	// HealthSyncSchedule is the cron spec of the gRPC health sync job.
	// Env: WORKERS_HEALTH_SYNC_SCHEDULE
	HealthSyncSchedule string `env:"HEALTH_SYNC_SCHEDULE"`
}

// Dashboard holds the settings of the terminal dashboard client.
type Dashboard struct {
	// ServerAddress is the base URL of the REST API.
	// Env: DASHBOARD_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// Token is the bearer token used to query usage endpoints.
	// Env: DASHBOARD_TOKEN
	Token string `env:"TOKEN"`

	// RefreshInterval is the polling period.
	// Env: DASHBOARD_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// LogFile receives the dashboard logs.
	// Env: DASHBOARD_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
//
// Sources are consulted in the following priority order (the first source
// that sets a field wins):
//  1. Environment variables (after an optional .env file is loaded)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

// GetDashboardConfig loads the same sources as [GetStructuredConfig] but only
// validates the settings the dashboard client needs.
func GetDashboardConfig() (*StructuredConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateDashboard()
}

func load() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
