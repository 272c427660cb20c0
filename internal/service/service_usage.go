package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/models"
)

const (
	defaultStatsDays   = 7
	maxStatsDays       = 366
	summaryConcurrency = 4
)

type usageService struct {
	tracker UsageTracker
	usage   store.UsageRepository
	alerts  store.AlertRepository
	now     func() time.Time

	logger *logger.Logger
}

func NewUsageService(tracker UsageTracker, usage store.UsageRepository, alerts store.AlertRepository, log *logger.Logger) UsageService {
	return &usageService{
		tracker: tracker,
		usage:   usage,
		alerts:  alerts,
		now:     time.Now,
		logger:  log,
	}
}

func (s *usageService) Statuses(ctx context.Context) ([]models.QuotaStatus, error) {
	return s.tracker.Statuses(ctx)
}

func (s *usageService) Status(ctx context.Context, service string) (models.QuotaStatus, error) {
	return s.tracker.QuotaStatus(ctx, service)
}

func (s *usageService) Stats(ctx context.Context, service string, from, to time.Time) (models.UsageStats, error) {
	from, to, err := s.dateRange(from, to)
	if err != nil {
		return models.UsageStats{}, err
	}

	records, err := s.usage.Stats(ctx, service, from, to)
	if err != nil {
		return models.UsageStats{}, fmt.Errorf("error loading usage of %s: %w", service, err)
	}

	return aggregate(service, from, to, records), nil
}

// Summary loads Stats of all tracked services concurrently. The result is
// ordered like the tracker's service list.
func (s *usageService) Summary(ctx context.Context, from, to time.Time) ([]models.UsageStats, error) {
	from, to, err := s.dateRange(from, to)
	if err != nil {
		return nil, err
	}

	services := s.tracker.Services()
	summary := make([]models.UsageStats, len(services))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(summaryConcurrency)
	for i, service := range services {
		g.Go(func() error {
			records, err := s.usage.Stats(gctx, service, from, to)
			if err != nil {
				return fmt.Errorf("error loading usage of %s: %w", service, err)
			}
			summary[i] = aggregate(service, from, to, records)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return summary, nil
}

func (s *usageService) Errors(ctx context.Context, service string, limit uint64) ([]models.APIError, error) {
	return s.usage.RecentErrors(ctx, service, limit)
}

func (s *usageService) Alerts(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error) {
	return s.alerts.ListAlerts(ctx, filter)
}

func (s *usageService) AcknowledgeAlert(ctx context.Context, id int64) (models.Alert, error) {
	return s.alerts.AcknowledgeAlert(ctx, id, s.now().UTC())
}

func (s *usageService) Reset(ctx context.Context, service string) error {
	if err := s.tracker.Reset(ctx, service); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("service", service).Msg("usage counters were reset")
	return nil
}

// dateRange defaults a missing bound to a window of defaultStatsDays ending
// today and rejects reversed or oversized ranges.
func (s *usageService) dateRange(from, to time.Time) (time.Time, time.Time, error) {
	if to.IsZero() {
		to = s.now()
	}
	to = truncateDate(to)
	if from.IsZero() {
		from = to.AddDate(0, 0, -(defaultStatsDays - 1))
	}
	from = truncateDate(from)

	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from %s is after to %s", ErrInvalidDateRange, from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	if to.Sub(from) > maxStatsDays*24*time.Hour {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: more than %d days", ErrInvalidDateRange, maxStatsDays)
	}

	return from, to, nil
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func aggregate(service string, from, to time.Time, records []models.UsageRecord) models.UsageStats {
	stats := models.UsageStats{Service: service, From: from, To: to, Records: records}
	if stats.Records == nil {
		stats.Records = make([]models.UsageRecord, 0)
	}

	var totalMs int64
	for _, rec := range records {
		stats.TotalCalls += rec.TotalCalls
		stats.SuccessfulCalls += rec.SuccessfulCalls
		stats.FailedCalls += rec.FailedCalls
		totalMs += rec.TotalResponseMs
	}
	if stats.TotalCalls > 0 {
		stats.SuccessRate = float64(stats.SuccessfulCalls) / float64(stats.TotalCalls)
		stats.AvgResponseMs = float64(totalMs) / float64(stats.TotalCalls)
	}

	return stats
}
