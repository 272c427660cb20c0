// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_Recording(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w *responseWriter)
		wantStatus int
		wantSize   int
		wantBody   string
	}{
		{
			name:       "nothing written",
			write:      func(*responseWriter) {},
			wantStatus: 0,
		},
		{
			name:       "explicit status only",
			write:      func(w *responseWriter) { w.WriteHeader(http.StatusNoContent) },
			wantStatus: http.StatusNoContent,
		},
		{
			name: "second WriteHeader ignored",
			write: func(w *responseWriter) {
				w.WriteHeader(http.StatusTooManyRequests)
				w.WriteHeader(http.StatusOK)
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "implicit 200 on Write",
			write:      func(w *responseWriter) { _, _ = w.Write([]byte(`{"success":true}`)) },
			wantStatus: http.StatusOK,
			wantSize:   16,
			wantBody:   `{"success":true}`,
		},
		{
			name: "size accumulates across writes",
			write: func(w *responseWriter) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("job "))
				_, _ = w.Write([]byte("created"))
			},
			wantStatus: http.StatusCreated,
			wantSize:   11,
			wantBody:   "job created",
		},
		{
			name:       "empty write still sets status",
			write:      func(w *responseWriter) { _, _ = w.Write(nil) },
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rw := &responseWriter{ResponseWriter: rec}

			tt.write(rw)

			assert.Equal(t, tt.wantStatus, rw.status)
			assert.Equal(t, tt.wantSize, rw.size)
			assert.Equal(t, tt.wantBody, rec.Body.String())
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, rec.Code, "status reaches the underlying writer")
			}
		})
	}
}

func TestResponseWriter_HeadersGoToUnderlying(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.Header().Set("X-Trace-ID", "abc")
	rw.WriteHeader(http.StatusAccepted)

	assert.Equal(t, "abc", rec.Header().Get("X-Trace-ID"))
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	require.Same(t, rec, rw.Unwrap())
	assert.NoError(t, http.NewResponseController(rw).Flush(), "controller reaches the recorder's Flusher")
	assert.True(t, rec.Flushed)
}
