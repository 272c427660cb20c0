package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-job-tracker/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ResourceService is the owner-scoped CRUD contract of one tracked resource.
// Every item is validated and completed with defaults before it is written.
type ResourceService[T any] interface {
	Create(ctx context.Context, userID int64, item T) (T, error)
	Get(ctx context.Context, userID, id int64) (T, error)
	List(ctx context.Context, userID int64, filter models.ListFilter) ([]T, error)
	Update(ctx context.Context, userID, id int64, item T) (T, error)
	Delete(ctx context.Context, userID, id int64) error
}

// UsageService exposes the live quotas and the persisted usage history of
// third-party services.
type UsageService interface {
	Statuses(ctx context.Context) ([]models.QuotaStatus, error)
	Status(ctx context.Context, service string) (models.QuotaStatus, error)

	// Stats aggregates the daily records of service between the UTC dates
	// of from and to, both inclusive.
	Stats(ctx context.Context, service string, from, to time.Time) (models.UsageStats, error)

	// Summary returns Stats of every tracked service.
	Summary(ctx context.Context, from, to time.Time) ([]models.UsageStats, error)

	Errors(ctx context.Context, service string, limit uint64) ([]models.APIError, error)
	Alerts(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error)
	AcknowledgeAlert(ctx context.Context, id int64) (models.Alert, error)
	Reset(ctx context.Context, service string) error
}

// IntegrationService calls third-party APIs on behalf of a user. Every call
// is rate limited and tracked.
type IntegrationService interface {
	GitHubRepositories(ctx context.Context, userID int64, user string) ([]models.Repository, error)
	SalarySeries(ctx context.Context, userID int64, seriesIDs []string, startYear, endYear int) ([]models.SalarySeries, error)
	EventbriteEvents(ctx context.Context, userID int64, organizationID string) ([]models.NetworkingEvent, error)

	// GenerateCoverLetter drafts a cover letter and stores it for userID.
	GenerateCoverLetter(ctx context.Context, userID int64, request models.CoverLetterRequest) (models.CoverLetter, error)

	// RenderCoverLetter returns the sanitized HTML of a stored cover letter.
	RenderCoverLetter(ctx context.Context, userID, id int64) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// UsageTracker is the part of the API usage tracker used by services.
type UsageTracker interface {
	CheckRateLimit(ctx context.Context, service string) (models.RateLimitDecision, error)
	TrackCall(ctx context.Context, call models.APICall) error
	Services() []string
	QuotaStatus(ctx context.Context, service string) (models.QuotaStatus, error)
	Statuses(ctx context.Context) ([]models.QuotaStatus, error)
	Reset(ctx context.Context, service string) error
}
