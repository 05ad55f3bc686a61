package service

import (
	"fmt"

	"github.com/MKhiriev/kessan-converter/internal/config"
	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/store"
)

type Services struct {
	ConvertService ConvertService
	AppInfoService AppInfoService
	UploadService  UploadService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	workbook := NewWorkbookBuilder(logger)

	appInfo, err := NewAppInfoService(cfg, storages.Uploads, workbook, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	convert := NewConvertValidationService(cfg.MaxUploadSize).
		Wrap(NewConvertService(storages.Uploads, workbook, cfg.MaxUploadSize, logger))

	return &Services{
		ConvertService: convert,
		AppInfoService: appInfo,
		UploadService:  NewUploadService(storages.Uploads, logger),
	}, nil
}
