package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/internal/validators"
	"github.com/MKhiriev/go-job-tracker/models"
)

// ─────────────────────────────────────────────
// Mock: store.ResourceRepository[T]
// ─────────────────────────────────────────────

type mockResourceRepository[T any] struct {
	createFn func(ctx context.Context, userID int64, item T) (T, error)
	getFn    func(ctx context.Context, userID, id int64) (T, error)
	listFn   func(ctx context.Context, userID int64, filter models.ListFilter) ([]T, error)
	updateFn func(ctx context.Context, userID, id int64, item T) (T, error)
	deleteFn func(ctx context.Context, userID, id int64) error
}

func (m *mockResourceRepository[T]) Create(ctx context.Context, userID int64, item T) (T, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, item)
	}
	return item, nil
}

func (m *mockResourceRepository[T]) Get(ctx context.Context, userID, id int64) (T, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, id)
	}
	var zero T
	return zero, store.ErrNotFound
}

func (m *mockResourceRepository[T]) List(ctx context.Context, userID int64, filter models.ListFilter) ([]T, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, filter)
	}
	return []T{}, nil
}

func (m *mockResourceRepository[T]) Update(ctx context.Context, userID, id int64, item T) (T, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, id, item)
	}
	return item, nil
}

func (m *mockResourceRepository[T]) Delete(ctx context.Context, userID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var fixedNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func newTestResourceService[T any](repo store.ResourceRepository[T], rules resourceRules[T]) ResourceService[T] {
	svc := newResourceService(repo, validators.NewResourceValidator(), rules, logger.Nop()).(*resourceService[T])
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// ─────────────────────────────────────────────
// Jobs
// ─────────────────────────────────────────────

func TestJobService_CreateAppliesDefaults(t *testing.T) {
	var written models.Job
	svc := newTestResourceService[models.Job](&mockResourceRepository[models.Job]{
		createFn: func(ctx context.Context, userID int64, item models.Job) (models.Job, error) {
			assert.Equal(t, int64(5), userID)
			written = item
			item.ID = 11
			return item, nil
		},
	}, jobRules)

	job, err := svc.Create(context.Background(), 5, models.Job{UserID: 999, Company: "Acme", Title: "SRE"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), job.ID)
	assert.Equal(t, int64(5), written.UserID, "owner must come from the caller")
	assert.Equal(t, models.JobApplied, written.Status)
	require.NotNil(t, written.AppliedAt)
	assert.Equal(t, fixedNow, *written.AppliedAt)
}

func TestJobService_WishlistHasNoAppliedAt(t *testing.T) {
	svc := newTestResourceService[models.Job](&mockResourceRepository[models.Job]{}, jobRules)

	job, err := svc.Create(context.Background(), 5, models.Job{Company: "Acme", Title: "SRE", Status: models.JobWishlist})

	require.NoError(t, err)
	assert.Nil(t, job.AppliedAt)
}

func TestJobService_InvalidJobIsNotWritten(t *testing.T) {
	svc := newTestResourceService[models.Job](&mockResourceRepository[models.Job]{
		createFn: func(ctx context.Context, userID int64, item models.Job) (models.Job, error) {
			t.Fatal("repository must not be called")
			return item, nil
		},
		updateFn: func(ctx context.Context, userID, id int64, item models.Job) (models.Job, error) {
			t.Fatal("repository must not be called")
			return item, nil
		},
	}, jobRules)

	_, err := svc.Create(context.Background(), 5, models.Job{Company: "Acme", Title: "SRE", Status: "ghosted"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidField)

	_, err = svc.Update(context.Background(), 5, 1, models.Job{Title: "SRE"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrRequiredField)
}

func TestJobService_UpdatePassesIDs(t *testing.T) {
	svc := newTestResourceService[models.Job](&mockResourceRepository[models.Job]{
		updateFn: func(ctx context.Context, userID, id int64, item models.Job) (models.Job, error) {
			assert.Equal(t, int64(5), userID)
			assert.Equal(t, int64(3), id)
			assert.Equal(t, models.JobOffer, item.Status)
			item.ID = id
			return item, nil
		},
	}, jobRules)

	job, err := svc.Update(context.Background(), 5, 3, models.Job{Company: "Acme", Title: "SRE", Status: models.JobOffer})

	require.NoError(t, err)
	assert.Equal(t, int64(3), job.ID)
}

func TestResourceService_DelegatesReads(t *testing.T) {
	filter := models.ListFilter{Limit: 10, Status: "applied"}
	svc := newTestResourceService[models.Job](&mockResourceRepository[models.Job]{
		listFn: func(ctx context.Context, userID int64, f models.ListFilter) ([]models.Job, error) {
			assert.Equal(t, filter, f)
			return []models.Job{{ID: 1}, {ID: 2}}, nil
		},
		deleteFn: func(ctx context.Context, userID, id int64) error {
			return store.ErrNotFound
		},
	}, jobRules)

	jobs, err := svc.List(context.Background(), 5, filter)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	_, err = svc.Get(context.Background(), 5, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 5, 1), store.ErrNotFound)
}

// ─────────────────────────────────────────────
// Other resources
// ─────────────────────────────────────────────

func TestEventService_Defaults(t *testing.T) {
	svc := newTestResourceService[models.NetworkingEvent](&mockResourceRepository[models.NetworkingEvent]{}, eventRules)

	event, err := svc.Create(context.Background(), 2, models.NetworkingEvent{Title: "Meetup", StartsAt: fixedNow})

	require.NoError(t, err)
	assert.Equal(t, models.EventPlanned, event.Status)
	assert.Equal(t, models.SourceManual, event.Source)
	assert.Equal(t, int64(2), event.UserID)
}

func TestContactService_RejectsBadEmail(t *testing.T) {
	svc := newTestResourceService[models.Contact](&mockResourceRepository[models.Contact]{}, contactRules)

	_, err := svc.Create(context.Background(), 2, models.Contact{Name: "Ada", Email: "ada"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDocumentServices_SetOwner(t *testing.T) {
	letters := newTestResourceService[models.CoverLetter](&mockResourceRepository[models.CoverLetter]{}, coverLetterRules)
	letter, err := letters.Create(context.Background(), 8, models.CoverLetter{Title: "Acme", Content: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), letter.UserID)

	resumes := newTestResourceService[models.Resume](&mockResourceRepository[models.Resume]{}, resumeRules)
	resume, err := resumes.Create(context.Background(), 8, models.Resume{Title: "CV", Content: "# CV", IsDefault: true})
	require.NoError(t, err)
	assert.Equal(t, int64(8), resume.UserID)
	assert.True(t, resume.IsDefault)
}
