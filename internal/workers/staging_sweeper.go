package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/store"
)

type stagingSweeper struct {
	staging  store.UploadStaging
	interval time.Duration
	logger   *logger.Logger
}

// NewStagingSweeper returns a [Worker] that removes staged uploads older than
// interval, once per interval. Uploads are normally released by the request
// that staged them; the sweep catches those left behind by a crash.
func NewStagingSweeper(staging store.UploadStaging, interval time.Duration, logger *logger.Logger) Worker {
	return &stagingSweeper{
		staging:  staging,
		interval: interval,
		logger:   logger,
	}
}

func (s *stagingSweeper) Run(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info().Msg("staged upload sweep disabled")
		return nil
	}

	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			n, err := s.staging.Sweep(ctx, s.interval)
			if err != nil {
				s.logger.Warn().Err(err).Msg("staged upload sweep failed")
				continue
			}
			if n > 0 {
				s.logger.Info().Int("deleted", n).Msg("stale staged uploads removed")
			}
		}
	}
}
