package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/store"
)

// jobTimeout bounds a single run of any job.
const jobTimeout = 5 * time.Minute

type job struct {
	name     string
	schedule cron.Schedule
	worker   Worker
}

// Workers owns the cron scheduler and the registered jobs.
type Workers struct {
	jobs    []job
	timeout time.Duration

	logger *logger.Logger
}

// NewWorkers registers the retention purge and, when syncer is not nil, the
// health sync job.
func NewWorkers(cfg config.Workers, usage store.UsageRepository, syncer HealthSyncer, logger *logger.Logger) (*Workers, error) {
	w := &Workers{timeout: jobTimeout, logger: logger}

	if err := w.add("retention", cfg.RetentionSchedule, newRetentionWorker(usage, cfg.RetentionDays, logger)); err != nil {
		return nil, err
	}
	if syncer != nil {
		if err := w.add("health-sync", cfg.HealthSyncSchedule, &healthSyncWorker{syncer: syncer}); err != nil {
			return nil, err
		}
	}

	return w, nil
}

func (w *Workers) add(name, spec string, worker Worker) error {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return fmt.Errorf("error parsing schedule of %s job: %w", name, err)
	}

	w.jobs = append(w.jobs, job{name: name, schedule: schedule, worker: worker})
	return nil
}

// Run starts the scheduler and blocks until ctx is done. Jobs still running
// at that moment are awaited before Run returns.
func (w *Workers) Run(ctx context.Context) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cronLogger{w.logger}),
		cron.WithChain(cron.Recover(cronLogger{w.logger}), cron.SkipIfStillRunning(cronLogger{w.logger})),
	)
	for _, j := range w.jobs {
		c.Schedule(j.schedule, cron.FuncJob(func() { w.runJob(ctx, j) }))
	}

	w.logger.Info().Int("jobs", len(w.jobs)).Msg("starting workers")
	c.Start()

	<-ctx.Done()

	<-c.Stop().Done()
	w.logger.Info().Msg("workers stopped")
}

func (w *Workers) runJob(ctx context.Context, j job) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	if err := j.worker.Run(ctx); err != nil {
		w.logger.Err(err).Str("job", j.name).Msg("job failed")
		return
	}

	w.logger.Debug().Str("job", j.name).Dur("duration", time.Since(start)).Msg("job finished")
}

// cronLogger routes scheduler messages to zerolog.
type cronLogger struct {
	l *logger.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debug().Fields(keysAndValues).Msg(msg)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Err(err).Fields(keysAndValues).Msg(msg)
}
