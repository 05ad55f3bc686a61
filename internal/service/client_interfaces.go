package service

import (
	"context"

	"github.com/MKhiriev/kessan-converter/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientConvertService is the upload client: it submits one document at a
// time to the conversion endpoint, delivers the resulting spreadsheet and
// keeps the idle / loading / error state the UI renders.
type ClientConvertService interface {
	// Submit posts req and resolves the submission to exactly one of
	// succeeded (spreadsheet delivered once) or failed (message set). The
	// loading state is cleared on every path. Failures are reported through
	// the returned [models.Outcome], not the error; the error is only
	// [ErrSubmissionInProgress] when another submission is in flight, in
	// which case nothing is sent and the state is untouched.
	Submit(ctx context.Context, req models.UploadRequest) (models.Outcome, error)

	// SubmitFile reads the document at path and submits it. A file that
	// cannot be read resolves the submission as failed.
	SubmitFile(ctx context.Context, path string) (models.Outcome, error)

	// State returns a snapshot of the current state.
	State() models.UIState

	// DismissError returns a failed state to idle. It has no effect while a
	// submission is in flight.
	DismissError()

	// CheckHealth queries the conversion backend health probe.
	CheckHealth(ctx context.Context) (models.HealthStatus, error)

	// Endpoint returns the conversion URL submissions are posted to.
	Endpoint() string
}
