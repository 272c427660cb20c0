package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/internal/tracker"
	"github.com/MKhiriev/go-job-tracker/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid json", fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), http.StatusBadRequest},
		{"validation wrapped by service", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrRequiredField), http.StatusBadRequest},
		{"bare validator error", validators.ErrInvalidField, http.StatusBadRequest},
		{"not found", fmt.Errorf("error getting job: %w", store.ErrNotFound), http.StatusNotFound},
		{"alert not found", store.ErrAlertNotFound, http.StatusNotFound},
		{"conflict", store.ErrLoginAlreadyExists, http.StatusConflict},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"unknown service", tracker.ErrUnknownService, http.StatusNotFound},
		{"date range", service.ErrInvalidDateRange, http.StatusBadRequest},
		{"rate limited beats integration failure", fmt.Errorf("%w: %w", service.ErrIntegrationFailed, tracker.ErrRateLimited), http.StatusTooManyRequests},
		{"integration failure", service.ErrIntegrationFailed, http.StatusBadGateway},
		{"storage failure", store.ErrScanningRows, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
