package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/models"
)

const serverService = "job-tracker"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates address and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpServerAdapter{client: utils.NewHTTPClient(baseURL, timeout), logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/login and stores the bearer token from the Authorization header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, transportError(serverService, err)
	}
	if err = mapHTTPError(serverService, resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token}, nil
}

// QuotaStatuses implements [ServerAdapter] via GET /api/usage.
func (h *httpServerAdapter) QuotaStatuses(ctx context.Context) ([]models.QuotaStatus, error) {
	resp, err := h.authedRequest(ctx).Get("/api/usage")
	if err != nil {
		return nil, transportError(serverService, err)
	}

	statuses := make([]models.QuotaStatus, 0)
	if err = decodeEnvelope(resp, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// Alerts implements [ServerAdapter] via GET /api/alerts.
func (h *httpServerAdapter) Alerts(ctx context.Context, unacknowledgedOnly bool) ([]models.Alert, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("unacknowledged", strconv.FormatBool(unacknowledgedOnly)).
		Get("/api/alerts")
	if err != nil {
		return nil, transportError(serverService, err)
	}

	alerts := make([]models.Alert, 0)
	if err = decodeEnvelope(resp, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// AcknowledgeAlert implements [ServerAdapter] via
// POST /api/alerts/{id}/acknowledge.
func (h *httpServerAdapter) AcknowledgeAlert(ctx context.Context, id int64) (models.Alert, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Post("/api/alerts/{id}/acknowledge")
	if err != nil {
		return models.Alert{}, transportError(serverService, err)
	}

	var alert models.Alert
	if err = decodeEnvelope(resp, &alert); err != nil {
		return models.Alert{}, err
	}
	return alert, nil
}

// ResetService implements [ServerAdapter] via POST /api/usage/{service}/reset.
func (h *httpServerAdapter) ResetService(ctx context.Context, service string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("service", service).
		Post("/api/usage/{service}/reset")
	if err != nil {
		return transportError(serverService, err)
	}

	return mapHTTPError(serverService, resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// decodeEnvelope checks the status of resp and unmarshals the data field of
// the {success, data, message} envelope into dest.
func decodeEnvelope(resp *resty.Response, dest any) error {
	if err := mapHTTPError(serverService, resp); err != nil {
		return err
	}

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return decodeError(serverService, resp.StatusCode(), err)
	}
	if !envelope.Success {
		return &StatusError{Service: serverService, Code: resp.StatusCode(), Err: fmt.Errorf("%w: %s", ErrUpstream, envelope.Message)}
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		return decodeError(serverService, resp.StatusCode(), err)
	}

	return nil
}
