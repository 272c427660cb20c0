package server

import "context"

// Server is the lifecycle contract of the application server.
type Server interface {
	// RunServer serves until a stop signal arrives and the shutdown completes.
	RunServer() error

	// Shutdown gracefully stops every transport.
	Shutdown()
}

// transport is a single listener managed by [Server].
type transport interface {
	listen() error
	serve() error
	shutdown(ctx context.Context) error
	// close releases a listener that never started serving.
	close() error
	name() string
}
