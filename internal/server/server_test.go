package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/handler"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
)

// recordingRunner blocks until its context is done.
type recordingRunner struct {
	started chan struct{}
	stopped chan struct{}
}

func newRecordingRunner() *recordingRunner {
	return &recordingRunner{started: make(chan struct{}), stopped: make(chan struct{})}
}

func (r *recordingRunner) Run(ctx context.Context) {
	close(r.started)
	<-ctx.Done()
	close(r.stopped)
}

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:    "127.0.0.1:0",
		GRPCAddress:    "127.0.0.1:0",
		RequestTimeout: time.Second,
	}
}

func newTestServer(t *testing.T, cfg config.Server, runner BackgroundRunner) *server {
	t.Helper()

	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, runner, cfg, logger.Nop())
	require.NoError(t, err)

	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, nil, testServerConfig(), logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, nil, testServerConfig(), logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_OnlyHTTP(t *testing.T) {
	cfg := testServerConfig()
	cfg.GRPCAddress = ""

	s := newTestServer(t, cfg, nil)

	require.Len(t, s.transports, 1)
	assert.Equal(t, "HTTP", s.transports[0].name())
}

func TestServer_ServeAndShutdown(t *testing.T) {
	runner := newRecordingRunner()
	s := newTestServer(t, testServerConfig(), runner)
	require.NoError(t, s.listen())

	httpAddr := s.transports[0].(*httpServer).listener.Addr().String()
	grpcAddr := s.transports[1].(*grpcServer).listener.Addr().String()

	done := make(chan error, 1)
	go func() { done <- s.serve(context.Background()) }()
	<-runner.started

	resp, err := http.Get("http://" + httpAddr + "/api/unknown")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.GetStatus())

	s.Shutdown()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after Shutdown")
	}
	<-runner.stopped

	_, err = http.Get("http://" + httpAddr + "/api/unknown")
	assert.Error(t, err, "listener is closed after shutdown")
}

func TestServer_ServeWithoutListen(t *testing.T) {
	s := newTestServer(t, testServerConfig(), nil)

	err := s.serve(context.Background())

	assert.ErrorIs(t, err, errServerNotListening)
}

func TestServer_ListenFailureClosesOpened(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := testServerConfig()
	cfg.GRPCAddress = busy.Addr().String()
	s := newTestServer(t, cfg, nil)

	err = s.listen()
	require.Error(t, err)

	httpLn := s.transports[0].(*httpServer).listener
	require.NotNil(t, httpLn)
	_, err = httpLn.Accept()
	assert.ErrorIs(t, err, net.ErrClosed)
}

func TestServer_ShutdownBeforeServe(t *testing.T) {
	s := newTestServer(t, testServerConfig(), nil)

	assert.NotPanics(t, s.Shutdown)
}
