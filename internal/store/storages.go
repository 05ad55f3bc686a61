package store

import (
	"fmt"

	"github.com/MKhiriev/kessan-converter/internal/config"
	"github.com/MKhiriev/kessan-converter/internal/logger"
)

// Storages groups the development server stores.
type Storages struct {
	Uploads UploadStaging
}

// NewStorages prepares the upload staging directory configured in cfg.
func NewStorages(cfg *config.ServerConfig, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("dir", cfg.UploadDir).Msg("creating new storages...")

	uploads, err := NewUploadStaging(cfg.UploadDir, logger)
	if err != nil {
		return nil, fmt.Errorf("upload staging: %w", err)
	}

	return &Storages{
		Uploads: uploads,
	}, nil
}
