package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/kessan-converter/internal/app"
	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/store"
	"github.com/MKhiriev/kessan-converter/models"
)

type uploadService struct {
	staging store.UploadStaging
	logger  *logger.Logger
}

func NewUploadService(staging store.UploadStaging, logger *logger.Logger) UploadService {
	return &uploadService{
		staging: staging,
		logger:  logger,
	}
}

func (s *uploadService) Cleanup(ctx context.Context) (models.CleanupResult, error) {
	deleted, err := s.staging.Cleanup(ctx)
	if err != nil {
		return models.CleanupResult{}, fmt.Errorf("cleanup staged uploads: %w", err)
	}

	s.logger.Info().Int("deleted", deleted).Msg("staged uploads cleaned up")
	return models.CleanupResult{
		Status:  "success",
		Message: fmt.Sprintf(app.MsgCleanupDone, deleted),
		Deleted: deleted,
	}, nil
}
