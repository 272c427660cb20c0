package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/handler"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
)

const shutdownTimeout = 15 * time.Second

// BackgroundRunner runs until its context is done.
type BackgroundRunner interface {
	Run(ctx context.Context)
}

type server struct {
	transports []transport
	workers    BackgroundRunner

	// stop cancels the serving context; nil until serve starts.
	mu   sync.Mutex
	stop context.CancelFunc

	logger *logger.Logger
}

// NewServer builds one transport per handler present in handlers. workers
// may be nil.
func NewServer(handlers *handler.Handlers, workers BackgroundRunner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{workers: workers, logger: logger}

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if handlers != nil && handlers.GRPC != nil && cfg.GRPCAddress != "" {
		s.transports = append(s.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.listen(); err != nil {
		return err
	}
	return s.serve(ctx)
}

// Shutdown triggers the same graceful stop as a signal.
func (s *server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		s.stop()
	}
}

func (s *server) listen() error {
	for i, t := range s.transports {
		if err := t.listen(); err != nil {
			for _, opened := range s.transports[:i] {
				_ = opened.close()
			}
			return err
		}
	}
	return nil
}

// serve blocks until ctx is done or a transport fails, then stops everything.
func (s *server) serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.mu.Lock()
	s.stop = cancel
	s.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)

	for _, t := range s.transports {
		g.Go(func() error {
			s.logger.Info().Msgf("launching %s server", t.name())
			return t.serve()
		})
	}
	if s.workers != nil {
		g.Go(func() error {
			s.workers.Run(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, t := range s.transports {
			if err := t.shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	err := g.Wait()
	if err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
