package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/utils"
)

type uploadStaging struct {
	dir    string
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewUploadStaging creates dir if needed and returns an [UploadStaging]
// writing uuid-named files into it.
func NewUploadStaging(dir string, logger *logger.Logger) (UploadStaging, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	return &uploadStaging{
		dir:    dir,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func (s *uploadStaging) Dir() string {
	return s.dir
}

func (s *uploadStaging) Stage(ctx context.Context, ext string, r io.Reader, limit int64) (string, error) {
	staged := filepath.Join(s.dir, s.ids.FileName(ext))

	f, err := os.OpenFile(staged, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("create staged file: %w", err)
	}

	// one extra byte tells an exact fit from an oversized payload
	n, err := io.Copy(f, io.LimitReader(r, limit+1))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil && n > limit {
		err = ErrUploadTooLarge
	}
	if err != nil {
		if removeErr := os.Remove(staged); removeErr != nil && !os.IsNotExist(removeErr) {
			s.logger.Warn().Err(removeErr).Str("path", staged).Msg("failed to remove rejected upload")
		}
		if errors.Is(err, ErrUploadTooLarge) {
			return "", err
		}
		return "", fmt.Errorf("write staged file: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("path", staged).Int64("bytes", n).Msg("upload staged")
	return staged, nil
}

func (s *uploadStaging) Release(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove staged file: %w", err)
	}
	return nil
}

func (s *uploadStaging) Cleanup(ctx context.Context) (int, error) {
	return s.removeWhere(ctx, func(os.FileInfo) bool { return true })
}

func (s *uploadStaging) Sweep(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	return s.removeWhere(ctx, func(info os.FileInfo) bool {
		return info.ModTime().Before(cutoff)
	})
}

// removeWhere deletes the regular files in the staging directory for which
// match returns true.
func (s *uploadStaging) removeWhere(ctx context.Context, match func(os.FileInfo) bool) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read upload directory: %w", err)
	}

	deleted := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return deleted, err
		}
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !match(info) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			s.logger.Warn().Err(err).Str("file", entry.Name()).Msg("failed to remove staged file")
			continue
		}
		deleted++
	}

	return deleted, nil
}
