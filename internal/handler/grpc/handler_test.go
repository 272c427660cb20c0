package grpc

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/models"
)

// ─────────────────────────────────────────────
// Mock: service.UsageService
// ─────────────────────────────────────────────

type mockUsageService struct {
	service.UsageService

	statuses []models.QuotaStatus
	err      error
}

func (m *mockUsageService) Statuses(context.Context) ([]models.QuotaStatus, error) {
	return m.statuses, m.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(usage service.UsageService) *Handler {
	return NewHandler(&service.Services{UsageService: usage}, logger.Nop())
}

func checkStatus(t *testing.T, h *Handler, svc string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: svc})
	require.NoError(t, err)
	return resp.GetStatus()
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestNewHandler_OverallServing(t *testing.T) {
	h := NewHandler(nil, logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ""))
	assert.NoError(t, h.SyncHealth(context.Background()), "sync without services is a no-op")
}

func TestSyncHealth_ReportsExhaustedServices(t *testing.T) {
	usage := &mockUsageService{statuses: []models.QuotaStatus{
		{Service: models.ServiceGitHub},
		{Service: models.ServiceBLS, Exhausted: true},
	}}
	h := newTestHandler(usage)

	require.NoError(t, h.SyncHealth(context.Background()))

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, models.ServiceGitHub))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, models.ServiceBLS))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ""))

	usage.statuses[1].Exhausted = false
	require.NoError(t, h.SyncHealth(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, models.ServiceBLS), "recovers after reset")
}

func TestSyncHealth_KeepsStatusesOnError(t *testing.T) {
	usage := &mockUsageService{statuses: []models.QuotaStatus{{Service: models.ServiceGemini, Exhausted: true}}}
	h := newTestHandler(usage)
	require.NoError(t, h.SyncHealth(context.Background()))

	usage.err = errors.New("redis down")
	err := h.SyncHealth(context.Background())

	assert.ErrorIs(t, err, usage.err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, models.ServiceGemini))
}

func TestShutdown_NotServing(t *testing.T) {
	h := newTestHandler(&mockUsageService{})

	h.Shutdown()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ""))
}

// TestHealth_OverTheWire checks registration and the logging interceptor
// through an in-memory connection.
func TestHealth_OverTheWire(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&service.Services{UsageService: &mockUsageService{}}, &logger.Logger{Logger: zerolog.New(&buf)})

	listener := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(h.UnaryLogging()))
	h.Register(srv)
	go func() { _ = srv.Serve(listener) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	_, err = healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: "myspace"})
	assert.Error(t, err, "unknown services are NotFound")

	assert.Contains(t, buf.String(), `"method":"/grpc.health.v1.Health/Check"`)
	assert.Contains(t, buf.String(), `"code":"NotFound"`)
	assert.Contains(t, buf.String(), `"trace_id":`)
}
