// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Window is a rate-limit accounting period.
type Window string

const (
	WindowMinute Window = "minute"
	WindowHour   Window = "hour"
	WindowDay    Window = "day"
)

// Windows lists every window in the order limits are checked.
var Windows = []Window{WindowMinute, WindowHour, WindowDay}

// Third-party services tracked by default.
const (
	ServiceGemini     = "gemini"
	ServiceGitHub     = "github"
	ServiceBLS        = "bls"
	ServiceEventbrite = "eventbrite"
)

// ServiceLimits is the quota configuration of a single third-party service.
// A zero limit means the window is not limited.
type ServiceLimits struct {
	PerMinute int64 `json:"per_minute"`
	PerHour   int64 `json:"per_hour"`
	PerDay    int64 `json:"per_day"`

	// AlertThreshold is the utilization fraction (0..1) above which a
	// quota_warning alert is raised.
	AlertThreshold float64 `json:"alert_threshold"`

	// ErrorRateThreshold is the hourly failure fraction above which a
	// high_error_rate alert is raised.
	ErrorRateThreshold float64 `json:"error_rate_threshold"`

	// MinCallsForErrorRate is the minimal number of hourly calls before the
	// error rate is evaluated.
	MinCallsForErrorRate int64 `json:"min_calls_for_error_rate"`
}

// Limit returns the configured ceiling for w.
func (l ServiceLimits) Limit(w Window) int64 {
	switch w {
	case WindowMinute:
		return l.PerMinute
	case WindowHour:
		return l.PerHour
	case WindowDay:
		return l.PerDay
	default:
		return 0
	}
}

// APICall describes one outbound request to a third-party service.
type APICall struct {
	Service    string        `json:"service"`
	Endpoint   string        `json:"endpoint"`
	UserID     int64         `json:"user_id,omitempty"`
	StatusCode int           `json:"status_code,omitempty"`
	Duration   time.Duration `json:"duration"`
	Success    bool          `json:"success"`
	Error      string        `json:"error,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
}

// Counter holds calls and failures observed inside one window bucket.
type Counter struct {
	Calls    int64 `json:"calls"`
	Failures int64 `json:"failures"`
}

// WindowCounts is the counter snapshot of a service for every window.
type WindowCounts struct {
	Minute Counter `json:"minute"`
	Hour   Counter `json:"hour"`
	Day    Counter `json:"day"`
}

// Get returns the counter for w.
func (c WindowCounts) Get(w Window) Counter {
	switch w {
	case WindowMinute:
		return c.Minute
	case WindowHour:
		return c.Hour
	case WindowDay:
		return c.Day
	default:
		return Counter{}
	}
}

// Set stores counter as the value of w.
func (c *WindowCounts) Set(w Window, counter Counter) {
	switch w {
	case WindowMinute:
		c.Minute = counter
	case WindowHour:
		c.Hour = counter
	case WindowDay:
		c.Day = counter
	}
}

// RateLimitDecision is the outcome of a rate limit check.
type RateLimitDecision struct {
	Service string        `json:"service"`
	Allowed bool          `json:"allowed"`
	Window  Window        `json:"window,omitempty"`
	Limit   int64         `json:"limit,omitempty"`
	Used    int64         `json:"used,omitempty"`
	ResetIn time.Duration `json:"reset_in,omitempty"`
	Reason  string        `json:"reason,omitempty"`
}

// WindowQuota is the utilization of a single window.
type WindowQuota struct {
	Window      Window    `json:"window"`
	Limit       int64     `json:"limit"`
	Used        int64     `json:"used"`
	Failures    int64     `json:"failures"`
	Remaining   int64     `json:"remaining"`
	Utilization float64   `json:"utilization"`
	ResetAt     time.Time `json:"reset_at"`
}

// QuotaStatus is the live quota picture of a service.
type QuotaStatus struct {
	Service   string        `json:"service"`
	Limits    ServiceLimits `json:"limits"`
	Windows   []WindowQuota `json:"windows"`
	Exhausted bool          `json:"exhausted"`
}

// UsageRecord is the persisted daily aggregate of calls for a
// (service, date, endpoint) key.
type UsageRecord struct {
	Service         string    `json:"service"`
	Date            time.Time `json:"date"`
	Endpoint        string    `json:"endpoint"`
	TotalCalls      int64     `json:"total_calls"`
	SuccessfulCalls int64     `json:"successful_calls"`
	FailedCalls     int64     `json:"failed_calls"`
	TotalResponseMs int64     `json:"-"`
	AvgResponseMs   float64   `json:"avg_response_ms"`
}

// UsageStats summarizes usage records over a date range.
type UsageStats struct {
	Service         string        `json:"service"`
	From            time.Time     `json:"from"`
	To              time.Time     `json:"to"`
	TotalCalls      int64         `json:"total_calls"`
	SuccessfulCalls int64         `json:"successful_calls"`
	FailedCalls     int64         `json:"failed_calls"`
	SuccessRate     float64       `json:"success_rate"`
	AvgResponseMs   float64       `json:"avg_response_ms"`
	Records         []UsageRecord `json:"records"`
}

// APIError is a persisted failed third-party call.
type APIError struct {
	ID         int64     `json:"id"`
	Service    string    `json:"service"`
	Endpoint   string    `json:"endpoint"`
	StatusCode int       `json:"status_code,omitempty"`
	Message    string    `json:"message"`
	UserID     int64     `json:"user_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
