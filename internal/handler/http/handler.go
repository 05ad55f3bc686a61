package http

import (
	"github.com/MKhiriev/kessan-converter/internal/config"
	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/service"
	"github.com/MKhiriev/kessan-converter/internal/utils"
)

type Handler struct {
	services      *service.Services
	maxUploadSize int64
	ids           *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		maxUploadSize: cfg.MaxUploadSize,
		ids:           utils.NewUUIDGenerator(),
		logger:        logger,
	}
}
