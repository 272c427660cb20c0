package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-job-tracker/internal/utils"
)

const traceIDMetadataKey = "x-trace-id"

// UnaryLogging attaches a trace-scoped logger to the call context and logs
// the outcome of every unary RPC.
func (h *Handler) UnaryLogging() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		traceID := utils.NewTraceID()
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(traceIDMetadataKey); len(values) > 0 && values[0] != "" {
				traceID = values[0]
			}
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = l.WithContext(ctx)

		start := time.Now()
		resp, err := handler(ctx, req)

		l.Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Send()

		return resp, err
	}
}
