// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tracker

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
)

const (
	defaultBaseDelay = 500 * time.Millisecond
	defaultMaxDelay  = 10 * time.Second
)

// Policy configures retries of [Execute].
type Policy struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries uint64
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// PolicyFromConfig builds a Policy from the tracker settings.
func PolicyFromConfig(cfg config.Tracker) Policy {
	return Policy{MaxRetries: cfg.MaxRetries, BaseDelay: cfg.BaseDelay, MaxDelay: cfg.MaxDelay}
}

func (p Policy) backoff() retry.Backoff {
	base := p.BaseDelay
	if base <= 0 {
		base = defaultBaseDelay
	}
	ceiling := p.MaxDelay
	if ceiling < base {
		ceiling = max(base, defaultMaxDelay)
	}

	b := retry.NewExponential(base)
	b = retry.WithCappedDuration(ceiling, b)
	return retry.WithMaxRetries(p.MaxRetries, b)
}

// Call describes one tracked outbound operation.
type Call[T any] struct {
	Service  string
	Endpoint string
	UserID   int64

	// Do performs the request and returns the HTTP status it observed, zero
	// when no response was received.
	Do func(ctx context.Context) (T, int, error)

	// Fallback, when set, produces the result after the call was rate
	// limited or every attempt failed.
	Fallback func(ctx context.Context, cause error) (T, error)
}

// IsRetryable reports whether a failure with the given HTTP status is worth
// another attempt. Zero stands for a transport error.
func IsRetryable(status int) bool {
	return status == 0 || status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// Execute runs call under the quota of its service. Every attempt is
// tracked. Retryable failures are repeated with exponential backoff up to
// policy.MaxRetries times; a rate limited call is not attempted at all.
// After the last failure the fallback is used when present.
func Execute[T any](ctx context.Context, guard Guard, policy Policy, call Call[T]) (T, error) {
	log := logger.FromContext(ctx)

	var result T
	attempt := 0

	err := retry.Do(ctx, policy.backoff(), func(ctx context.Context) error {
		attempt++

		if err := checkLimit(ctx, guard, call.Service); err != nil {
			return err
		}

		start := time.Now()
		value, status, callErr := call.Do(ctx)

		record := models.APICall{
			Service:    call.Service,
			Endpoint:   call.Endpoint,
			UserID:     call.UserID,
			StatusCode: status,
			Duration:   time.Since(start),
			Success:    callErr == nil,
		}
		if callErr != nil {
			record.Error = callErr.Error()
		}
		if err := guard.TrackCall(ctx, record); err != nil {
			log.Warn().Err(err).Str("service", call.Service).Msg("failed to track api call")
		}

		if callErr == nil {
			result = value
			return nil
		}

		if IsRetryable(status) {
			log.Warn().Err(callErr).
				Str("service", call.Service).
				Str("endpoint", call.Endpoint).
				Int("status", status).
				Int("attempt", attempt).
				Msg("retryable api failure")
			return retry.RetryableError(callErr)
		}

		return callErr
	})
	if err == nil {
		return result, nil
	}

	log.Err(err).
		Str("service", call.Service).
		Str("endpoint", call.Endpoint).
		Int("attempts", attempt).
		Msg("api call failed")

	if call.Fallback != nil {
		log.Info().Str("service", call.Service).Msg("using fallback")
		return call.Fallback(ctx, err)
	}

	var zero T
	return zero, err
}

// checkLimit returns an [ErrRateLimited] error when service has no quota
// left. Counter read failures let the call through.
func checkLimit(ctx context.Context, guard Guard, service string) error {
	decision, err := guard.CheckRateLimit(ctx, service)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("service", service).Msg("rate limit check failed")
		return nil
	}
	if !decision.Allowed {
		return fmt.Errorf("%w: %s", ErrRateLimited, decision.Reason)
	}
	return nil
}
