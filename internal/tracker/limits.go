// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tracker

import (
	"maps"

	"github.com/MKhiriev/go-job-tracker/models"
)

const (
	defaultAlertThreshold       = 0.8
	defaultErrorRateThreshold   = 0.5
	defaultMinCallsForErrorRate = 10
)

// DefaultLimits returns the published free-tier quotas of the services the
// job tracker calls.
func DefaultLimits() map[string]models.ServiceLimits {
	return map[string]models.ServiceLimits{
		models.ServiceGemini:     normalize(models.ServiceLimits{PerMinute: 15, PerDay: 1500}),
		models.ServiceGitHub:     normalize(models.ServiceLimits{PerHour: 5000}),
		models.ServiceBLS:        normalize(models.ServiceLimits{PerDay: 500}),
		models.ServiceEventbrite: normalize(models.ServiceLimits{PerHour: 2000, PerDay: 48000}),
	}
}

// MergeLimits returns the defaults overridden per service by overrides.
// An override replaces the whole entry of its service.
func MergeLimits(overrides map[string]models.ServiceLimits) map[string]models.ServiceLimits {
	limits := DefaultLimits()
	for service, l := range overrides {
		limits[service] = normalize(l)
	}
	return limits
}

// normalize fills zero thresholds with the defaults.
func normalize(l models.ServiceLimits) models.ServiceLimits {
	if l.AlertThreshold <= 0 {
		l.AlertThreshold = defaultAlertThreshold
	}
	if l.ErrorRateThreshold <= 0 {
		l.ErrorRateThreshold = defaultErrorRateThreshold
	}
	if l.MinCallsForErrorRate <= 0 {
		l.MinCallsForErrorRate = defaultMinCallsForErrorRate
	}
	return l
}

func cloneLimits(limits map[string]models.ServiceLimits) map[string]models.ServiceLimits {
	out := make(map[string]models.ServiceLimits, len(limits))
	maps.Copy(out, limits)
	return out
}
