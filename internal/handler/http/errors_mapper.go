package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/service"
	"github.com/MKhiriev/go-job-tracker/internal/store"
	"github.com/MKhiriev/go-job-tracker/internal/tracker"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/internal/validators"
)

// errorStatusMap is consulted in order; more specific errors come first
// because a wrapped error may match several entries.
var errorStatusMap = []struct {
	target error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidParameter, http.StatusBadRequest},
	{ErrUnauthenticated, http.StatusUnauthorized},

	{tracker.ErrRateLimited, http.StatusTooManyRequests},
	{tracker.ErrUnknownService, http.StatusNotFound},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidDateRange, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest},

	{validators.ErrInvalidUserID, http.StatusBadRequest},
	{validators.ErrRequiredField, http.StatusBadRequest},
	{validators.ErrInvalidField, http.StatusBadRequest},

	{store.ErrNotFound, http.StatusNotFound},
	{store.ErrAlertNotFound, http.StatusNotFound},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrLoginAlreadyExists, http.StatusConflict},
	{store.ErrAlreadyExists, http.StatusConflict},
	{store.ErrConstraintViolation, http.StatusBadRequest},

	{service.ErrIntegrationFailed, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes a failed envelope. Internal errors are not
// exposed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("unexpected error")
		message = http.StatusText(status)
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request failed")
	}

	utils.WriteError(w, message, status)
}
