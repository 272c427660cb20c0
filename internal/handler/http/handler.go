package http

import (
	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
)

type Handler struct {
	services *service.Services

	// throttle is nil when inbound rate limiting is disabled.
	throttle *limiterCache[string]
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
	if cfg.RateLimitRPS > 0 {
		h.throttle = newLimiterCache[string](cfg.RateLimitRPS, max(cfg.RateLimitBurst, 1))
	}

	logger.Info().Msg("http handler created")
	return h
}
