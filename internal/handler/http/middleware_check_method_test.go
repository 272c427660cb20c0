// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux without Handler.Init so that no
// services are needed.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/usage", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("usage"))
	})
	router.Post("/api/usage/{service}/reset", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	router.Get("/api/jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Delete("/api/jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"registered static route", http.MethodGet, "/api/usage", http.StatusOK},
		{"registered parameterised route", http.MethodPost, "/api/usage/github/reset", http.StatusAccepted},
		{"second method on parameterised route", http.MethodDelete, "/api/jobs/7", http.StatusNoContent},
		{"wrong method on static route → 404", http.MethodPost, "/api/usage", http.StatusNotFound},
		{"wrong method on parameterised route → 404", http.MethodPut, "/api/jobs/7", http.StatusNotFound},
		{"GET on POST-only route → 404", http.MethodGet, "/api/usage/github/reset", http.StatusNotFound},
		{"unknown route", http.MethodGet, "/api/nothing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_EmptyBodyOn404(t *testing.T) {
	router := buildRouter()

	req := httptest.NewRequest(http.MethodPatch, "/api/usage", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Body.String())
}

// Calling the handler directly for a route and method that exist delegates
// to the router.
func TestCheckHTTPMethod_DelegatesWhenMethodRegistered(t *testing.T) {
	router := buildRouter()
	handler := CheckHTTPMethod(router)

	req := httptest.NewRequest(http.MethodGet, "/api/usage", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "usage", rr.Body.String())
}
