// Package grpc exposes the standard gRPC health service. The overall ""
// service reports SERVING while the process is up; every tracked
// third-party service reports NOT_SERVING while one of its quota windows is
// exhausted.
package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
)

// Handler is the root gRPC transport handler.
//
// A handler instance is created once at startup and shared by the gRPC
// server and the health sync worker.
type Handler struct {
	// usage is nil when the handler is built without services.
	usage service.UsageService

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] and marks the overall service as
// SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	if services != nil {
		h.usage = services.UsageService
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SyncHealth refreshes the per-service statuses from current quota usage.
func (h *Handler) SyncHealth(ctx context.Context) error {
	if h.usage == nil {
		return nil
	}

	statuses, err := h.usage.Statuses(ctx)
	if err != nil {
		return fmt.Errorf("error syncing health statuses: %w", err)
	}

	for _, status := range statuses {
		serving := healthpb.HealthCheckResponse_SERVING
		if status.Exhausted {
			serving = healthpb.HealthCheckResponse_NOT_SERVING
			h.logger.Debug().Str("service", status.Service).Msg("quota exhausted, reporting NOT_SERVING")
		}
		h.health.SetServingStatus(status.Service, serving)
	}

	return nil
}

// Shutdown flips every status to NOT_SERVING so clients drain before the
// server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
