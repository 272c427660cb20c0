package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/models"
)

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

// authProbe runs the auth middleware in front of a handler that reports the
// user id it sees.
func authProbe(t *testing.T, auth service.AuthService, header string) (*httptest.ResponseRecorder, int64, bool) {
	t.Helper()

	h := &Handler{services: &service.Services{AuthService: auth}, logger: logger.Nop()}

	var (
		userID int64
		called bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		userID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	return rr, userID, called
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer eyJ.payload.sig")
	require.NoError(t, err)
	assert.Equal(t, "eyJ.payload.sig", token)

	for _, header := range []string{"Bearer", "Token abc", "Bearer a b", "   "} {
		_, err := getTokenFromAuthHeader(header)
		assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader, header)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	auth := &mockAuthService{parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
		assert.Equal(t, "good", s)
		return models.Token{UserID: 17}, nil
	}}

	rr, userID, called := authProbe(t, auth, "Bearer good")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.True(t, called)
	assert.Equal(t, int64(17), userID)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		parse       func(context.Context, string) (models.Token, error)
		wantMessage string
	}{
		{
			name:        "missing header",
			wantMessage: ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:        "malformed header",
			header:      "Bearertoken",
			wantMessage: "invalid `Authorization` header",
		},
		{
			name:   "expired token",
			header: "Bearer stale",
			parse: func(context.Context, string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
			wantMessage: http.StatusText(http.StatusUnauthorized),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parse := tt.parse
			if parse == nil {
				parse = func(context.Context, string) (models.Token, error) {
					t.Error("token must not be parsed")
					return models.Token{}, nil
				}
			}

			rr, _, called := authProbe(t, &mockAuthService{parseTokenFn: parse}, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.False(t, called)
			env := decodeEnvelope(t, rr, nil)
			assert.False(t, env.Success)
			assert.Contains(t, env.Message, tt.wantMessage)
		})
	}
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	const n = 32

	var wg sync.WaitGroup
	codes := make(chan int, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr, _, _ := authProbe(t, &mockAuthService{}, "Bearer shared")
			codes <- rr.Code
		}()
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Equal(t, http.StatusNoContent, code)
	}
}
