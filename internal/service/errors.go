package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrSubmissionInProgress is returned by the upload client when a
	// conversion is requested while another one is still in flight.
	ErrSubmissionInProgress = errors.New("変換処理中です")

	ErrBuildingWorkbook = errors.New("failed to build workbook")
	ErrStagingUpload    = errors.New("failed to stage upload")
)
