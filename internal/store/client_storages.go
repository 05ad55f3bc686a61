package store

import (
	"github.com/MKhiriev/kessan-converter/internal/config"
	"github.com/MKhiriev/kessan-converter/internal/logger"
)

// ClientStorages groups the client-side file stores into a single value that
// can be passed to the service layer.
type ClientStorages struct {
	// Deliverer saves converted spreadsheets into the download directory.
	Deliverer FileDeliverer
	// Uploads reads the documents selected by the user.
	Uploads UploadReader
}

// NewClientStorages wires the client stores from cfg.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) *ClientStorages {
	logger.Info().Str("download_dir", cfg.DownloadDir).Msg("creating new storages...")

	return &ClientStorages{
		Deliverer: NewFileDeliverer(cfg.DownloadDir, logger),
		Uploads:   NewFileUploadReader(),
	}
}
