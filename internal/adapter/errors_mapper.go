package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const maxErrorBody = 512

// mapHTTPError returns nil for 2xx responses and a [StatusError] wrapping
// the sentinel for the status otherwise.
func mapHTTPError(service string, resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	if body == "" {
		body = http.StatusText(code)
	}

	var sentinel error
	switch {
	case code == http.StatusBadRequest:
		sentinel = ErrBadRequest
	case code == http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case code == http.StatusForbidden:
		sentinel = ErrForbidden
	case code == http.StatusNotFound:
		sentinel = ErrNotFound
	case code == http.StatusConflict:
		sentinel = ErrConflict
	case code == http.StatusTooManyRequests:
		sentinel = ErrTooManyRequests
	case code >= http.StatusInternalServerError:
		sentinel = ErrUpstream
	default:
		return &StatusError{Service: service, Code: code, Err: fmt.Errorf("unexpected status: %s", body)}
	}

	return &StatusError{Service: service, Code: code, Err: fmt.Errorf("%w: %s", sentinel, body)}
}

// transportError wraps a failure that produced no response.
func transportError(service string, err error) error {
	return &StatusError{Service: service, Err: fmt.Errorf("%w: %w", ErrTransport, err)}
}

// decodeError wraps a body that could not be parsed after a response with
// the given status.
func decodeError(service string, code int, err error) error {
	return &StatusError{Service: service, Code: code, Err: fmt.Errorf("%w: %w", ErrDecodeResponse, err)}
}
