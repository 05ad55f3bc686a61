package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/kessan-converter/internal/adapter"
	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/store"
	"github.com/MKhiriev/kessan-converter/models"
)

type clientConvertService struct {
	adapter   adapter.ConverterAdapter
	deliverer store.FileDeliverer
	uploads   store.UploadReader

	logger *logger.Logger

	mu    sync.Mutex
	state models.UIState
}

// NewClientConvertService creates the upload client in the idle state.
func NewClientConvertService(
	converterAdapter adapter.ConverterAdapter,
	deliverer store.FileDeliverer,
	uploads store.UploadReader,
	logger *logger.Logger,
) ClientConvertService {
	return &clientConvertService{
		adapter:   converterAdapter,
		deliverer: deliverer,
		uploads:   uploads,
		logger:    logger,
	}
}

func (s *clientConvertService) Submit(ctx context.Context, req models.UploadRequest) (models.Outcome, error) {
	if !s.begin() {
		return models.Outcome{}, ErrSubmissionInProgress
	}

	// resolves to failed unless convert returns; a panic still clears loading
	outcome := models.Failed(models.FallbackErrorMessage)
	defer func() { s.finish(outcome) }()

	outcome = s.convert(ctx, req)
	return outcome, nil
}

func (s *clientConvertService) SubmitFile(ctx context.Context, path string) (models.Outcome, error) {
	if !s.begin() {
		return models.Outcome{}, ErrSubmissionInProgress
	}

	outcome := models.Failed(models.FallbackErrorMessage)
	defer func() { s.finish(outcome) }()

	req, err := s.uploads.ReadUpload(ctx, path)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("failed to read upload")
		outcome = models.Failed(failureMessage(err))
		return outcome, nil
	}

	outcome = s.convert(ctx, req)
	return outcome, nil
}

// convert runs one request against the adapter and, on success, hands the
// spreadsheet to the deliverer exactly once.
func (s *clientConvertService) convert(ctx context.Context, req models.UploadRequest) models.Outcome {
	log := s.logger.With().
		Str("file", req.FileName).
		Int("bytes", len(req.Content)).
		Str("endpoint", s.adapter.Endpoint()).
		Logger()

	log.Info().Msg("submitting document for conversion")

	result, err := s.adapter.Convert(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, adapter.ErrConversionFailed):
			log.Warn().Err(err).Msg("conversion rejected by server")
		default:
			log.Error().Err(err).Msg("conversion request failed")
		}
		return models.Failed(failureMessage(err))
	}

	savedPath, err := s.deliverer.Deliver(ctx, result)
	if err != nil {
		log.Error().Err(err).Msg("failed to deliver spreadsheet")
		return models.Failed(failureMessage(err))
	}

	log.Info().Str("saved_path", savedPath).Msg("conversion succeeded")
	return models.Succeeded(savedPath)
}

// begin enters the loading state, clearing any previous error or result.
// It reports false when a submission is already in flight.
func (s *clientConvertService) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Loading() {
		return false
	}
	s.state = models.UIState{Phase: models.PhaseLoading}
	return true
}

func (s *clientConvertService) finish(outcome models.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = outcome.State()
}

func (s *clientConvertService) State() models.UIState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *clientConvertService) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase == models.PhaseFailed {
		s.state = models.UIState{Phase: models.PhaseIdle}
	}
}

func (s *clientConvertService) CheckHealth(ctx context.Context) (models.HealthStatus, error) {
	return s.adapter.Health(ctx)
}

func (s *clientConvertService) Endpoint() string {
	return s.adapter.Endpoint()
}
