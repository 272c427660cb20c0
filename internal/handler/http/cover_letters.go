package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-tracker/internal/utils"
	"github.com/MKhiriev/go-job-tracker/models"
)

func (h *Handler) generateCoverLetter(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.CoverLetterRequest
	if err = decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	letter, err := h.services.IntegrationService.GenerateCoverLetter(r.Context(), userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := "cover letter generated"
	if !letter.Generated {
		message = "cover letter created from template"
	}
	utils.WriteSuccess(w, letter, message, http.StatusCreated)
}

func (h *Handler) renderCoverLetter(w http.ResponseWriter, r *http.Request) {
	userID, id, err := ownerAndID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	html, err := h.services.IntegrationService.RenderCoverLetter(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, map[string]string{"html": html}, "", http.StatusOK)
}
