package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	myGRPC "github.com/MKhiriev/go-job-tracker/internal/handler/grpc"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogging()))
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  s,
		logger:  logger,
	}
}

func (g *grpcServer) name() string { return "gRPC" }

func (g *grpcServer) listen() error {
	ln, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", g.address, err)
	}
	g.listener = ln
	return nil
}

func (g *grpcServer) serve() error {
	if g.listener == nil {
		return errServerNotListening
	}

	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC server started")
	if err := g.server.Serve(g.listener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown reports NOT_SERVING first, then drains in-flight RPCs. A ctx
// expiring during the drain forces the stop.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("gRPC server Shutdown: %w", ctx.Err())
	}
}

func (g *grpcServer) close() error {
	if g.listener == nil {
		return nil
	}
	return g.listener.Close()
}
