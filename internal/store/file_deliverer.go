package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/models"
)

// maxNameAttempts caps the " (n)" suffix search.
const maxNameAttempts = 1000

type fileDeliverer struct {
	dir    string
	logger *logger.Logger
}

// NewFileDeliverer returns a [FileDeliverer] that saves spreadsheets into dir.
// The blob is first written to a temporary file in dir and then renamed to
// its final name, so a partially written download never carries the target
// name. An existing file is never overwritten: the next free "name (n).ext"
// is picked instead.
func NewFileDeliverer(dir string, logger *logger.Logger) FileDeliverer {
	return &fileDeliverer{
		dir:    dir,
		logger: logger,
	}
}

func (f *fileDeliverer) Deliver(ctx context.Context, result models.ConversionResult) (savedPath string, err error) {
	name := sanitizeFileName(result.FileName)

	if err = os.MkdirAll(f.dir, 0o755); err != nil {
		return "", fmt.Errorf("create download directory: %w", err)
	}

	tmp, err := os.CreateTemp(f.dir, ".kessan-*.part")
	if err != nil {
		return "", fmt.Errorf("create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	// the temporary reference is released on every path
	defer func() {
		if err != nil {
			if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
				f.logger.Warn().Err(rmErr).Str("tmp", tmpPath).Msg("failed to remove temporary file")
			}
		}
	}()

	if _, err = tmp.Write(result.Content); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write temporary file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close temporary file: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return "", err
	}

	target, err := f.reservePath(name)
	if err != nil {
		return "", err
	}

	// only the placeholder created by reservePath is replaced here
	if err = os.Rename(tmpPath, target); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("rename to %s: %w", filepath.Base(target), err)
	}

	if abs, absErr := filepath.Abs(target); absErr == nil {
		target = abs
	}

	f.logger.Debug().Str("path", target).Int("bytes", len(result.Content)).Msg("spreadsheet delivered")
	return target, nil
}

// reservePath creates an empty placeholder at the first free name in f.dir,
// trying name, then "base (1).ext", "base (2).ext" and so on. The placeholder
// is created with O_EXCL, so a file that appears concurrently is skipped
// rather than overwritten.
func (f *fileDeliverer) reservePath(name string) (string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for i := 0; i < maxNameAttempts; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", base, i, ext)
		}

		path := filepath.Join(f.dir, candidate)
		placeholder, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("reserve %s: %w", candidate, err)
		}
		if err = placeholder.Close(); err != nil {
			_ = os.Remove(path)
			return "", fmt.Errorf("reserve %s: %w", candidate, err)
		}
		return path, nil
	}

	return "", ErrNoFreeFileName
}

// sanitizeFileName strips directory components so a result can never escape
// the download directory.
func sanitizeFileName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return models.DefaultDownloadName
	}
	return name
}
