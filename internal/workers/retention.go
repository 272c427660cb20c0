package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/store"
)

// retentionWorker deletes usage aggregates and error records older than the
// retention period.
type retentionWorker struct {
	usage store.UsageRepository
	days  int
	now   func() time.Time

	logger *logger.Logger
}

func newRetentionWorker(usage store.UsageRepository, days int, logger *logger.Logger) *retentionWorker {
	return &retentionWorker{usage: usage, days: days, now: time.Now, logger: logger}
}

func (r *retentionWorker) Run(ctx context.Context) error {
	before := r.now().UTC().AddDate(0, 0, -r.days)

	deleted, err := r.usage.PurgeBefore(ctx, before)
	if err != nil {
		return fmt.Errorf("error purging usage data: %w", err)
	}

	r.logger.Info().Time("before", before).Int64("deleted", deleted).Msg("usage data purged")
	return nil
}

type healthSyncWorker struct {
	syncer HealthSyncer
}

func (h *healthSyncWorker) Run(ctx context.Context) error {
	return h.syncer.SyncHealth(ctx)
}
