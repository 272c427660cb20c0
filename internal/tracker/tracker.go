// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tracker

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
)

type alertKey struct {
	service string
	typ     models.AlertType
	window  models.Window
}

// Tracker accounts calls of third-party services against their limits.
type Tracker struct {
	counters CounterStore
	usage    UsageRecorder
	alerts   AlertSaver
	limits   map[string]models.ServiceLimits
	now      func() time.Time
	logger   *logger.Logger

	mu sync.Mutex
	// fired holds the bucket start of the last raised alert per key.
	fired map[alertKey]time.Time
}

// NewTracker constructs a Tracker. Services absent from limits are counted
// but never limited.
func NewTracker(counters CounterStore, usage UsageRecorder, alerts AlertSaver, limits map[string]models.ServiceLimits, log *logger.Logger) *Tracker {
	log.Info().Int("services", len(limits)).Msg("creating api usage tracker")
	return &Tracker{
		counters: counters,
		usage:    usage,
		alerts:   alerts,
		limits:   cloneLimits(limits),
		now:      time.Now,
		logger:   log,
		fired:    make(map[alertKey]time.Time),
	}
}

// Services returns the names of the limited services, sorted.
func (t *Tracker) Services() []string {
	names := make([]string, 0, len(t.limits))
	for name := range t.limits {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Limits returns the configured limits of service.
func (t *Tracker) Limits(service string) (models.ServiceLimits, bool) {
	l, ok := t.limits[service]
	return l, ok
}

// CheckRateLimit reports whether one more call to service fits into every
// configured window. The first exhausted window is reported in minute, hour,
// day order. When the counters cannot be read the call is allowed and the
// error is returned.
func (t *Tracker) CheckRateLimit(ctx context.Context, service string) (models.RateLimitDecision, error) {
	decision := models.RateLimitDecision{Service: service, Allowed: true}

	limits, ok := t.limits[service]
	if !ok {
		return decision, nil
	}

	now := t.now()
	counts, err := t.counters.Counts(ctx, service, now)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Tracker.CheckRateLimit").
			Str("service", service).
			Msg("failed to read counters, allowing call")
		return decision, err
	}

	for _, w := range models.Windows {
		limit := limits.Limit(w)
		if limit <= 0 {
			continue
		}

		used := counts.Get(w).Calls
		if used >= limit {
			return models.RateLimitDecision{
				Service: service,
				Allowed: false,
				Window:  w,
				Limit:   limit,
				Used:    used,
				ResetIn: bucketEnd(w, now).Sub(now),
				Reason:  fmt.Sprintf("%s %s limit of %d calls reached", service, w, limit),
			}, nil
		}
	}

	return decision, nil
}

// TrackCall counts call, persists its daily aggregate and, for failures, the
// error row, then evaluates alerts. Persistence errors are logged and
// returned; the counters stay incremented.
func (t *Tracker) TrackCall(ctx context.Context, call models.APICall) error {
	log := logger.FromContext(ctx)
	if call.Timestamp.IsZero() {
		call.Timestamp = t.now()
	}

	counts, err := t.counters.Increment(ctx, call.Service, call.Timestamp, !call.Success)
	if err != nil {
		log.Err(err).
			Str("func", "Tracker.TrackCall").
			Str("service", call.Service).
			Msg("failed to increment counters")
		return err
	}

	var errs []error
	if err := t.usage.RecordCall(ctx, call); err != nil {
		errs = append(errs, err)
	}
	if !call.Success {
		if err := t.usage.SaveError(ctx, call); err != nil {
			errs = append(errs, err)
		}
	}

	if limits, ok := t.limits[call.Service]; ok {
		if err := t.evaluateAlerts(ctx, call.Service, limits, counts, call.Timestamp); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		err := fmt.Errorf("%w: %w", ErrPersistingUsage, errors.Join(errs...))
		log.Err(err).
			Str("func", "Tracker.TrackCall").
			Str("service", call.Service).
			Str("endpoint", call.Endpoint).
			Msg("api call counted but not fully persisted")
		return err
	}

	return nil
}

func (t *Tracker) evaluateAlerts(ctx context.Context, service string, limits models.ServiceLimits, counts models.WindowCounts, at time.Time) error {
	var errs []error

	for _, w := range models.Windows {
		limit := limits.Limit(w)
		if limit <= 0 {
			continue
		}

		used := counts.Get(w).Calls
		utilization := float64(used) / float64(limit)

		switch {
		case utilization >= 1:
			errs = append(errs, t.raise(ctx, models.Alert{
				Service:   service,
				Type:      models.AlertQuotaExceeded,
				Severity:  models.SeverityCritical,
				Window:    w,
				Message:   fmt.Sprintf("%s %s quota exhausted (%d/%d calls)", service, w, used, limit),
				Threshold: 1,
				Value:     utilization,
			}, at))
		case utilization >= limits.AlertThreshold:
			errs = append(errs, t.raise(ctx, models.Alert{
				Service:   service,
				Type:      models.AlertQuotaWarning,
				Severity:  models.SeverityWarning,
				Window:    w,
				Message:   fmt.Sprintf("%s %s usage at %.0f%% (%d/%d calls)", service, w, utilization*100, used, limit),
				Threshold: limits.AlertThreshold,
				Value:     utilization,
			}, at))
		}
	}

	hour := counts.Hour
	if hour.Calls > 0 && hour.Calls >= limits.MinCallsForErrorRate {
		rate := float64(hour.Failures) / float64(hour.Calls)
		if rate >= limits.ErrorRateThreshold {
			errs = append(errs, t.raise(ctx, models.Alert{
				Service:   service,
				Type:      models.AlertHighErrorRate,
				Severity:  models.SeverityWarning,
				Window:    models.WindowHour,
				Message:   fmt.Sprintf("%s error rate at %.0f%% (%d of %d calls this hour)", service, rate*100, hour.Failures, hour.Calls),
				Threshold: limits.ErrorRateThreshold,
				Value:     rate,
			}, at))
		}
	}

	return errors.Join(errs...)
}

// raise persists alert unless an alert with the same key was already raised
// in the current bucket of its window.
func (t *Tracker) raise(ctx context.Context, alert models.Alert, at time.Time) error {
	key := alertKey{service: alert.Service, typ: alert.Type, window: alert.Window}
	bucket := bucketStart(alert.Window, at)

	t.mu.Lock()
	if last, ok := t.fired[key]; ok && last.Equal(bucket) {
		t.mu.Unlock()
		return nil
	}
	prev, hadPrev := t.fired[key]
	t.fired[key] = bucket
	t.mu.Unlock()

	alert.CreatedAt = at
	log := logger.FromContext(ctx)
	event := log.Warn()
	if alert.Severity == models.SeverityCritical {
		event = log.Error()
	}
	event.Str("service", alert.Service).
		Str("type", string(alert.Type)).
		Str("window", string(alert.Window)).
		Float64("value", alert.Value).
		Msg(alert.Message)

	if _, err := t.alerts.CreateAlert(ctx, alert); err != nil {
		// let the next call try again
		t.mu.Lock()
		if hadPrev {
			t.fired[key] = prev
		} else {
			delete(t.fired, key)
		}
		t.mu.Unlock()
		return err
	}

	return nil
}

// QuotaStatus returns the live utilization of every window of service.
func (t *Tracker) QuotaStatus(ctx context.Context, service string) (models.QuotaStatus, error) {
	limits, ok := t.limits[service]
	if !ok {
		return models.QuotaStatus{}, fmt.Errorf("%w: %s", ErrUnknownService, service)
	}

	now := t.now()
	counts, err := t.counters.Counts(ctx, service, now)
	if err != nil {
		return models.QuotaStatus{}, err
	}

	status := models.QuotaStatus{
		Service: service,
		Limits:  limits,
		Windows: make([]models.WindowQuota, 0, len(models.Windows)),
	}
	for _, w := range models.Windows {
		c := counts.Get(w)
		q := models.WindowQuota{
			Window:   w,
			Limit:    limits.Limit(w),
			Used:     c.Calls,
			Failures: c.Failures,
			ResetAt:  bucketEnd(w, now),
		}
		if q.Limit > 0 {
			q.Remaining = max(q.Limit-q.Used, 0)
			q.Utilization = float64(q.Used) / float64(q.Limit)
			if q.Used >= q.Limit {
				status.Exhausted = true
			}
		}
		status.Windows = append(status.Windows, q)
	}

	return status, nil
}

// Statuses returns [Tracker.QuotaStatus] of every limited service ordered by
// name.
func (t *Tracker) Statuses(ctx context.Context) ([]models.QuotaStatus, error) {
	statuses := make([]models.QuotaStatus, 0, len(t.limits))
	for _, service := range t.Services() {
		status, err := t.QuotaStatus(ctx, service)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// Reset clears the counters and the alert history of service.
func (t *Tracker) Reset(ctx context.Context, service string) error {
	if _, ok := t.limits[service]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownService, service)
	}

	if err := t.counters.Reset(ctx, service); err != nil {
		return err
	}

	t.mu.Lock()
	for key := range t.fired {
		if key.service == service {
			delete(t.fired, key)
		}
	}
	t.mu.Unlock()

	logger.FromContext(ctx).Info().Str("service", service).Msg("api usage counters reset")
	return nil
}
