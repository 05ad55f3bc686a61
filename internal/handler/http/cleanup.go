package http

import (
	"net/http"

	"github.com/MKhiriev/kessan-converter/internal/app"
	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/utils"
)

func (h *Handler) cleanup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	result, err := h.services.UploadService.Cleanup(r.Context())
	if err != nil {
		log.Err(err).Msg("cleanup failed")
		utils.WriteDetail(w, app.MsgCleanupError+err.Error(), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write cleanup result")
	}
}
