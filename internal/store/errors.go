package store

import "errors"

// Sentinel errors returned by the file stores. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrEmptyPath is returned when no file path was given.
	ErrEmptyPath = errors.New("ファイルが選択されていません")

	// ErrNotRegularFile is returned when the selected path is a directory or
	// some other non-regular file.
	ErrNotRegularFile = errors.New("通常のファイルではありません")

	// ErrNoFreeFileName is returned when every " (n)" variant of the target
	// name is already taken.
	ErrNoFreeFileName = errors.New("no free file name in download directory")

	// ErrUploadTooLarge is returned by the staging area when a payload exceeds
	// the configured limit.
	ErrUploadTooLarge = errors.New("upload exceeds size limit")
)
