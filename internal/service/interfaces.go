package service

import (
	"context"

	"github.com/MKhiriev/kessan-converter/models"
)

// ConvertService turns an uploaded PDF into a spreadsheet blob.
type ConvertService interface {
	Convert(ctx context.Context, doc models.ConvertDocument) ([]byte, error)
}

// ConvertServiceWrapper defines middleware composition for ConvertService.
// Implementations wrap an existing ConvertService to add behavior such as
// validation.
type ConvertServiceWrapper interface {
	Wrap(ConvertService) ConvertService // returns a decorated ConvertService applying additional behavior
}

// WorkbookBuilder renders the spreadsheet for one document.
type WorkbookBuilder interface {
	Build(ctx context.Context, doc models.ConvertDocument) ([]byte, error)
	// Sheets lists the worksheet names every built workbook contains.
	Sheets() []string
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetServiceInfo(ctx context.Context) models.ServiceInfo
	CheckHealth(ctx context.Context) models.HealthStatus
}

type UploadService interface {
	// Cleanup removes staged uploads left behind by interrupted requests.
	Cleanup(ctx context.Context) (models.CleanupResult, error)
}
