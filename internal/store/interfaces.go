package store

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UploadStaging keeps incoming documents on disk for the duration of a
// conversion request.
type UploadStaging interface {
	// Stage copies at most limit bytes from r into a uniquely named file and
	// returns its path. [ErrUploadTooLarge] is returned when r holds more.
	Stage(ctx context.Context, ext string, r io.Reader, limit int64) (string, error)
	// Release removes a staged file. Missing files are not an error.
	Release(ctx context.Context, path string) error
	// Cleanup removes every staged file and reports how many were deleted.
	Cleanup(ctx context.Context) (int, error)
	// Sweep removes staged files last modified more than maxAge ago.
	Sweep(ctx context.Context, maxAge time.Duration) (int, error)
	// Dir returns the staging directory.
	Dir() string
}
