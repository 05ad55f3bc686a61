package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/validators"
	"github.com/MKhiriev/kessan-converter/models"
)

// suggestedFileName is the download name this server proposes. Clients are
// free to ignore it.
const suggestedFileName = "決算報告書_変換結果.xlsx"

// multipartOverhead is the allowance for boundaries and part headers on top
// of the maximum file size.
const multipartOverhead = 1 << 20

func (h *Handler) convert(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)

	file, header, err := r.FormFile(models.FormFieldFile)
	if err != nil {
		log.Debug().Err(err).Msg("no file in multipart form")
		h.writeError(w, r, h.readError(err, validators.ErrNoFileSelected))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, r, h.readError(err, fmt.Errorf("read upload: %w", err)))
		return
	}

	xlsx, err := h.services.ConvertService.Convert(r.Context(), models.ConvertDocument{
		FileName: header.Filename,
		Content:  content,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", models.SpreadsheetContentType)
	w.Header().Set("Content-Disposition", contentDisposition(suggestedFileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(xlsx)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(xlsx); err != nil {
		log.Warn().Err(err).Msg("failed to write spreadsheet")
	}
}

// readError turns a body read failure into the size error when the request
// hit the body limit and into fallback otherwise.
func (h *Handler) readError(err, fallback error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return validators.TooLarge(h.maxUploadSize)
	}
	return fallback
}

// contentDisposition builds an attachment header with an RFC 5987 encoded
// file name.
func contentDisposition(name string) string {
	return "attachment; filename*=UTF-8''" + url.PathEscape(name)
}
