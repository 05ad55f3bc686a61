package service

import (
	"context"
	"os"

	"github.com/MKhiriev/kessan-converter/internal/app"
	"github.com/MKhiriev/kessan-converter/internal/config"
	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/store"
	"github.com/MKhiriev/kessan-converter/models"
)

const (
	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"
)

type appInfoService struct {
	appVersion string
	staging    store.UploadStaging
	workbook   WorkbookBuilder

	logger *logger.Logger
}

func NewAppInfoService(cfg *config.ServerConfig, staging store.UploadStaging, workbook WorkbookBuilder, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		staging:    staging,
		workbook:   workbook,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetServiceInfo(ctx context.Context) models.ServiceInfo {
	return models.ServiceInfo{
		Message:     app.MsgServiceRunning,
		Version:     s.appVersion,
		Status:      "running",
		Environment: "development",
		Endpoints: map[string]string{
			"convert": "/api/convert (POST)",
			"health":  "/health (GET)",
			"cleanup": "/api/cleanup (DELETE)",
		},
	}
}

// CheckHealth reports degraded when the workbook layout is empty or the
// upload directory is gone, since no conversion could succeed then.
func (s *appInfoService) CheckHealth(ctx context.Context) models.HealthStatus {
	templateExists := len(s.workbook.Sheets()) > 0

	status := models.HealthStatus{
		Status:         healthStatusHealthy,
		TemplateExists: templateExists,
		Message:        app.MsgHealthOK,
	}

	switch {
	case !templateExists:
		status.Status = healthStatusDegraded
		status.Message = app.MsgTemplateMissing
	case !isDir(s.staging.Dir()):
		status.Status = healthStatusDegraded
		status.Message = app.MsgUploadDirUnavailable
	}

	if status.Status != healthStatusHealthy {
		s.logger.Warn().Str("reason", status.Message).Msg("health check degraded")
	}
	return status
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
