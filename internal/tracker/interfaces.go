package tracker

import (
	"context"
	"time"

	"github.com/MKhiriev/go-job-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/tracker_mock.go -package=mock

// CounterStore keeps per-service calls and failures for every window bucket.
type CounterStore interface {
	// Increment counts one call at the given time and returns the counters
	// of the buckets the call fell into.
	Increment(ctx context.Context, service string, at time.Time, failed bool) (models.WindowCounts, error)

	// Counts returns the counters of the buckets containing at. Windows
	// whose stored bucket is older read as zero.
	Counts(ctx context.Context, service string, at time.Time) (models.WindowCounts, error)

	// Reset drops every counter of service.
	Reset(ctx context.Context, service string) error
}

// UsageRecorder persists tracked calls.
type UsageRecorder interface {
	RecordCall(ctx context.Context, call models.APICall) error
	SaveError(ctx context.Context, call models.APICall) error
}

// AlertSaver persists raised alerts.
type AlertSaver interface {
	CreateAlert(ctx context.Context, alert models.Alert) (models.Alert, error)
}

// Guard is the part of [Tracker] used by [Execute].
type Guard interface {
	CheckRateLimit(ctx context.Context, service string) (models.RateLimitDecision, error)
	TrackCall(ctx context.Context, call models.APICall) error
}
