package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-job-tracker/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// ResourceRepository provides owner-scoped CRUD over one resource table.
// Every method filters by userID; a row owned by another user behaves as
// if it does not exist.
type ResourceRepository[T any] interface {
	Create(ctx context.Context, userID int64, item T) (T, error)
	Get(ctx context.Context, userID, id int64) (T, error)
	List(ctx context.Context, userID int64, filter models.ListFilter) ([]T, error)
	Update(ctx context.Context, userID, id int64, item T) (T, error)
	Delete(ctx context.Context, userID, id int64) error
}

// UsageRepository persists daily usage aggregates and failed calls.
type UsageRepository interface {
	RecordCall(ctx context.Context, call models.APICall) error
	SaveError(ctx context.Context, call models.APICall) error
	Stats(ctx context.Context, service string, from, to time.Time) ([]models.UsageRecord, error)
	RecentErrors(ctx context.Context, service string, limit uint64) ([]models.APIError, error)
	PurgeBefore(ctx context.Context, before time.Time) (int64, error)
}

// AlertRepository persists threshold alerts.
type AlertRepository interface {
	CreateAlert(ctx context.Context, alert models.Alert) (models.Alert, error)
	ListAlerts(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error)
	AcknowledgeAlert(ctx context.Context, id int64, at time.Time) (models.Alert, error)
}
