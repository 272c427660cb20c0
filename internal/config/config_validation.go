// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.RateLimitRPS < 0 || cfg.Server.RateLimitBurst < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Tracker.BaseDelay <= 0 || cfg.Tracker.MaxDelay < cfg.Tracker.BaseDelay {
		return ErrInvalidTrackerConfigs
	}
	for name, limits := range cfg.Tracker.Services {
		if limits.PerMinute < 0 || limits.PerHour < 0 || limits.PerDay < 0 {
			return fmt.Errorf("%w: negative limit for %q", ErrInvalidTrackerConfigs, name)
		}
		if limits.AlertThreshold < 0 || limits.AlertThreshold > 1 {
			return fmt.Errorf("%w: alert threshold for %q must be within [0, 1]", ErrInvalidTrackerConfigs, name)
		}
	}

	if cfg.Workers.RetentionDays < 1 {
		return ErrInvalidWorkerConfigs
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	for _, spec := range []string{cfg.Workers.RetentionSchedule, cfg.Workers.HealthSyncSchedule} {
		if _, err := parser.Parse(spec); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidWorkerConfigs, err)
		}
	}

	return nil
}

// validateDashboard checks the settings used by the terminal dashboard.
func (cfg *StructuredConfig) validateDashboard() error {
	if cfg.Dashboard.ServerAddress == "" || cfg.Dashboard.Token == "" {
		return ErrInvalidDashboardConfigs
	}

	if cfg.Dashboard.RefreshInterval <= 0 {
		return ErrInvalidDashboardConfigs
	}

	return nil
}
