package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/models"
)

// ─────────────────────────────────────────────
// Mock: AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed.jwt.token", UserID: user.UserID}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{UserID: testUserID}, nil
	}
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock: AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.AppInfo {
	return models.AppInfo{Version: m.version, Uptime: "1m0s"}
}

// ─────────────────────────────────────────────
// Mock: ResourceService[T]
// ─────────────────────────────────────────────

type mockResourceService[T any] struct {
	createFn func(ctx context.Context, userID int64, item T) (T, error)
	getFn    func(ctx context.Context, userID, id int64) (T, error)
	listFn   func(ctx context.Context, userID int64, filter models.ListFilter) ([]T, error)
	updateFn func(ctx context.Context, userID, id int64, item T) (T, error)
	deleteFn func(ctx context.Context, userID, id int64) error
}

func (m *mockResourceService[T]) Create(ctx context.Context, userID int64, item T) (T, error) {
	return m.createFn(ctx, userID, item)
}

func (m *mockResourceService[T]) Get(ctx context.Context, userID, id int64) (T, error) {
	return m.getFn(ctx, userID, id)
}

func (m *mockResourceService[T]) List(ctx context.Context, userID int64, filter models.ListFilter) ([]T, error) {
	return m.listFn(ctx, userID, filter)
}

func (m *mockResourceService[T]) Update(ctx context.Context, userID, id int64, item T) (T, error) {
	return m.updateFn(ctx, userID, id, item)
}

func (m *mockResourceService[T]) Delete(ctx context.Context, userID, id int64) error {
	return m.deleteFn(ctx, userID, id)
}

// ─────────────────────────────────────────────
// Mock: UsageService
// ─────────────────────────────────────────────

type mockUsageService struct {
	statusesFn    func(ctx context.Context) ([]models.QuotaStatus, error)
	statusFn      func(ctx context.Context, service string) (models.QuotaStatus, error)
	statsFn       func(ctx context.Context, service string, from, to time.Time) (models.UsageStats, error)
	summaryFn     func(ctx context.Context, from, to time.Time) ([]models.UsageStats, error)
	errorsFn      func(ctx context.Context, service string, limit uint64) ([]models.APIError, error)
	alertsFn      func(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error)
	acknowledgeFn func(ctx context.Context, id int64) (models.Alert, error)
	resetFn       func(ctx context.Context, service string) error
}

func (m *mockUsageService) Statuses(ctx context.Context) ([]models.QuotaStatus, error) {
	return m.statusesFn(ctx)
}

func (m *mockUsageService) Status(ctx context.Context, service string) (models.QuotaStatus, error) {
	return m.statusFn(ctx, service)
}

func (m *mockUsageService) Stats(ctx context.Context, service string, from, to time.Time) (models.UsageStats, error) {
	return m.statsFn(ctx, service, from, to)
}

func (m *mockUsageService) Summary(ctx context.Context, from, to time.Time) ([]models.UsageStats, error) {
	return m.summaryFn(ctx, from, to)
}

func (m *mockUsageService) Errors(ctx context.Context, service string, limit uint64) ([]models.APIError, error) {
	return m.errorsFn(ctx, service, limit)
}

func (m *mockUsageService) Alerts(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error) {
	return m.alertsFn(ctx, filter)
}

func (m *mockUsageService) AcknowledgeAlert(ctx context.Context, id int64) (models.Alert, error) {
	return m.acknowledgeFn(ctx, id)
}

func (m *mockUsageService) Reset(ctx context.Context, service string) error {
	return m.resetFn(ctx, service)
}

// ─────────────────────────────────────────────
// Mock: IntegrationService
// ─────────────────────────────────────────────

type mockIntegrationService struct {
	githubFn     func(ctx context.Context, userID int64, user string) ([]models.Repository, error)
	salariesFn   func(ctx context.Context, userID int64, seriesIDs []string, startYear, endYear int) ([]models.SalarySeries, error)
	eventbriteFn func(ctx context.Context, userID int64, organizationID string) ([]models.NetworkingEvent, error)
	generateFn   func(ctx context.Context, userID int64, request models.CoverLetterRequest) (models.CoverLetter, error)
	renderFn     func(ctx context.Context, userID, id int64) (string, error)
}

func (m *mockIntegrationService) GitHubRepositories(ctx context.Context, userID int64, user string) ([]models.Repository, error) {
	return m.githubFn(ctx, userID, user)
}

func (m *mockIntegrationService) SalarySeries(ctx context.Context, userID int64, seriesIDs []string, startYear, endYear int) ([]models.SalarySeries, error) {
	return m.salariesFn(ctx, userID, seriesIDs, startYear, endYear)
}

func (m *mockIntegrationService) EventbriteEvents(ctx context.Context, userID int64, organizationID string) ([]models.NetworkingEvent, error) {
	return m.eventbriteFn(ctx, userID, organizationID)
}

func (m *mockIntegrationService) GenerateCoverLetter(ctx context.Context, userID int64, request models.CoverLetterRequest) (models.CoverLetter, error) {
	return m.generateFn(ctx, userID, request)
}

func (m *mockIntegrationService) RenderCoverLetter(ctx context.Context, userID, id int64) (string, error) {
	return m.renderFn(ctx, userID, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testUserID int64 = 42

// newTestServices returns services whose AuthService accepts any token as
// testUserID. Tests replace the fields they exercise.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:    &mockAuthService{},
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
}

func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	return NewHandler(svcs, config.Server{}, logger.Nop()).Init()
}

// serve sends an authenticated request through the full router.
func serve(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer stub-token")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// serveHandler calls a single handler func without the router, so no user
// is present in the context.
func serveHandler(handler http.HandlerFunc, method, path string) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(method, path, nil))
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}
