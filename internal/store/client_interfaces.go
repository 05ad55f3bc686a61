package store

import (
	"context"

	"github.com/MKhiriev/kessan-converter/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// FileDeliverer hands a converted spreadsheet over to the user.
type FileDeliverer interface {
	// Deliver persists result and returns the path it ended up at.
	Deliver(ctx context.Context, result models.ConversionResult) (string, error)
}

// UploadReader loads the document the user picked for conversion.
type UploadReader interface {
	ReadUpload(ctx context.Context, path string) (models.UploadRequest, error)
}
