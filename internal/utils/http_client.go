package utils

import (
	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(log)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient whose resty diagnostics go
// to log. Retries are left disabled.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetLogger(restyLogger{log}).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}

// restyLogger routes resty's printf-style logging into zerolog.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug().Msgf(format, v...)
}
