package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-job-tracker/internal/utils"
)

func (h *Handler) githubRepositories(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	repos, err := h.services.IntegrationService.GitHubRepositories(r.Context(), userID, r.URL.Query().Get("user"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, repos, "", http.StatusOK)
}

func (h *Handler) salarySeries(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	startYear, err := intQuery(r, "start_year")
	if err != nil {
		writeError(w, r, err)
		return
	}
	endYear, err := intQuery(r, "end_year")
	if err != nil {
		writeError(w, r, err)
		return
	}
	seriesIDs := splitList(r.URL.Query().Get("series"))
	if len(seriesIDs) == 0 {
		writeError(w, r, fmt.Errorf("%w: series is required", ErrInvalidParameter))
		return
	}

	series, err := h.services.IntegrationService.SalarySeries(r.Context(), userID, seriesIDs, startYear, endYear)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, series, "", http.StatusOK)
}

func (h *Handler) eventbriteEvents(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	events, err := h.services.IntegrationService.EventbriteEvents(r.Context(), userID, r.URL.Query().Get("organization"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, events, "", http.StatusOK)
}
