package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/models"
)

type appInfoService struct {
	appVersion string
	startedAt  time.Time
	now        func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		startedAt:  time.Now().UTC(),
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetAppInfo returns the version with the uptime rounded to seconds.
func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return models.AppInfo{
		Version:   s.appVersion,
		StartedAt: s.startedAt,
		Uptime:    s.now().Sub(s.startedAt).Round(time.Second).String(),
	}
}
