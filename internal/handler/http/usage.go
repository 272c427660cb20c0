// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-job-tracker/internal/logger"
	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/models"
)

const defaultErrorsLimit = 50

func (h *Handler) quotaStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.services.UsageService.Statuses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, statuses, "", http.StatusOK)
}

func (h *Handler) quotaStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.UsageService.Status(r.Context(), chi.URLParam(r, "service"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, status, "", http.StatusOK)
}

func (h *Handler) usageStats(w http.ResponseWriter, r *http.Request) {
	from, to, err := dateRangeQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	stats, err := h.services.UsageService.Stats(r.Context(), chi.URLParam(r, "service"), from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, stats, "", http.StatusOK)
}

func (h *Handler) usageSummary(w http.ResponseWriter, r *http.Request) {
	from, to, err := dateRangeQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	summary, err := h.services.UsageService.Summary(r.Context(), from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, summary, "", http.StatusOK)
}

func (h *Handler) usageErrors(w http.ResponseWriter, r *http.Request) {
	limit, err := uintQuery(r, "limit", maxListPageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if limit == 0 {
		limit = defaultErrorsLimit
	}

	apiErrors, err := h.services.UsageService.Errors(r.Context(), chi.URLParam(r, "service"), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, apiErrors, "", http.StatusOK)
}

func (h *Handler) resetUsage(w http.ResponseWriter, r *http.Request) {
	service := chi.URLParam(r, "service")
	if err := h.services.UsageService.Reset(r.Context(), service); err != nil {
		writeError(w, r, err)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	logger.FromRequest(r).Info().Str("service", service).Int64("user_id", userID).Msg("usage counters reset")
	utils.WriteSuccess(w, nil, service+" counters reset", http.StatusOK)
}

func (h *Handler) listAlerts(w http.ResponseWriter, r *http.Request) {
	unacknowledged, err := boolQuery(r, "unacknowledged")
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := uintQuery(r, "limit", maxListPageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}

	alerts, err := h.services.UsageService.Alerts(r.Context(), models.AlertFilter{
		Service:            r.URL.Query().Get("service"),
		UnacknowledgedOnly: unacknowledged,
		Limit:              limit,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, alerts, "", http.StatusOK)
}

func (h *Handler) acknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	alert, err := h.services.UsageService.AcknowledgeAlert(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, alert, "alert acknowledged", http.StatusOK)
}
