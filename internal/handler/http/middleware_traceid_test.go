package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
)

func executeWithTraceID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantGenerated bool
	}{
		{name: "custom trace ID is reused", incoming: "my-custom-trace-id"},
		{name: "UUID trace ID is reused", incoming: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "missing trace ID is generated", wantGenerated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}

			rr, req := executeWithTraceID(h, tt.incoming)

			require.NotNil(t, req, "next handler must be called")
			traceID := rr.Header().Get(traceIDHeader)
			if tt.wantGenerated {
				_, err := uuid.Parse(traceID)
				assert.NoError(t, err, "generated trace ID should be a UUID, got %q", traceID)
			} else {
				assert.Equal(t, tt.incoming, traceID)
			}
			assert.Equal(t, traceID, utils.GetTraceIDFromContext(req.Context()))
		})
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	_, req := executeWithTraceID(h, "trace-in-logs")
	logger.FromRequest(req).Info().Msg("inside handler")

	assert.Contains(t, buf.String(), `"trace_id":"trace-in-logs"`)
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		rr, _ := executeWithTraceID(h, "")
		id := rr.Header().Get(traceIDHeader)

		_, duplicate := seen[id]
		require.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	originalCtx := req.Context()

	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
}
