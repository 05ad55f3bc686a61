package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/store"
	"github.com/MKhiriev/kessan-converter/internal/validators"
	"github.com/MKhiriev/kessan-converter/models"
)

type convertService struct {
	staging  store.UploadStaging
	workbook WorkbookBuilder
	maxSize  int64

	logger *logger.Logger
}

// NewConvertService stages each upload under a uuid name for the duration of
// the request and renders the workbook for it. The staged copy is released
// whatever the outcome.
func NewConvertService(staging store.UploadStaging, workbook WorkbookBuilder, maxSize int64, logger *logger.Logger) ConvertService {
	return &convertService{
		staging:  staging,
		workbook: workbook,
		maxSize:  maxSize,
		logger:   logger,
	}
}

func (s *convertService) Convert(ctx context.Context, doc models.ConvertDocument) ([]byte, error) {
	log := logger.FromContext(ctx)

	path, err := s.staging.Stage(ctx, filepath.Ext(doc.FileName), bytes.NewReader(doc.Content), s.maxSize)
	if err != nil {
		if errors.Is(err, store.ErrUploadTooLarge) {
			return nil, validators.TooLarge(s.maxSize)
		}
		return nil, fmt.Errorf("%w: %w", ErrStagingUpload, err)
	}
	defer func() {
		if err := s.staging.Release(ctx, path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to release staged upload")
		}
	}()

	doc.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	log.Info().Str("id", doc.ID).Str("file", doc.FileName).Int("bytes", len(doc.Content)).Msg("converting document")

	content, err := s.workbook.Build(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingWorkbook, err)
	}

	return content, nil
}
