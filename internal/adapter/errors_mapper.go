package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/kessan-converter/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and a [*ServerError] otherwise.
// The message is the JSON "detail" string; a body that is not JSON, has no
// detail, or whose detail is empty or not a string falls back to
// [models.FallbackErrorMessage].
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &ServerError{
		StatusCode: resp.StatusCode(),
		Detail:     detailFromBody(resp.Body()),
	}
}

func detailFromBody(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return models.FallbackErrorMessage
	}

	if msg := errResp.Message(); msg != "" {
		return msg
	}
	return models.FallbackErrorMessage
}
