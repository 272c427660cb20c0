package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-tracker/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	utils.WriteSuccess(w, info, "", http.StatusOK)
}
