// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AlertType classifies why an alert was raised.
type AlertType string

const (
	AlertQuotaWarning  AlertType = "quota_warning"
	AlertQuotaExceeded AlertType = "quota_exceeded"
	AlertHighErrorRate AlertType = "high_error_rate"
)

// Severity is the operator-facing urgency of an alert.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert is a persisted record created when a usage or error threshold is
// crossed. It exists for operator visibility only.
type Alert struct {
	ID             int64      `json:"id"`
	Service        string     `json:"service"`
	Type           AlertType  `json:"type"`
	Severity       Severity   `json:"severity"`
	Window         Window     `json:"window"`
	Message        string     `json:"message"`
	Threshold      float64    `json:"threshold"`
	Value          float64    `json:"value"`
	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// AlertFilter narrows alert listings.
type AlertFilter struct {
	Service            string
	UnacknowledgedOnly bool
	Limit              uint64
}
