package http

import (
	"net/http"

	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/utils"
)

func (h *Handler) getServiceInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetServiceInfo(r.Context())

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write service info")
	}
}

// getHealth always answers 200; a degraded backend is reported in the body.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	status := h.services.AppInfoService.CheckHealth(r.Context())

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write health status")
	}
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
