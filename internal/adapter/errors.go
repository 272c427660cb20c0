package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("client unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrTooManyRequests = errors.New("too many requests")
	ErrUpstream        = errors.New("upstream failure")
	ErrTransport       = errors.New("transport failure")
	ErrDecodeResponse  = errors.New("cannot decode response")
	ErrNotConfigured   = errors.New("integration is not configured")
)

// StatusError is returned by every third-party adapter. Code is the HTTP
// status observed, zero when no response was received.
type StatusError struct {
	Service string
	Code    int
	Err     error
}

func (e *StatusError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("%s: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s: http %d: %v", e.Service, e.Code, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err: 200 for nil, the code
// of a [StatusError], and zero for any other error.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}

	return 0
}
