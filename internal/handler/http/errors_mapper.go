package http

import (
	"net/http"

	"github.com/MKhiriev/kessan-converter/internal/app"
	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/utils"
	"github.com/MKhiriev/kessan-converter/internal/validators"
)

func statusFromError(err error) int {
	if validators.IsValidationError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// detailFromError returns the detail text for err. Validation errors are
// already worded for the user; anything else is reported as a conversion
// error.
func detailFromError(err error) string {
	if validators.IsValidationError(err) {
		return err.Error()
	}
	return app.MsgConversionError + err.Error()
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("conversion failed")
	} else {
		log.Info().Err(err).Msg("upload rejected")
	}

	if _, writeErr := utils.WriteDetail(w, detailFromError(err), status); writeErr != nil {
		log.Err(writeErr).Msg("failed to write error detail")
	}
}
