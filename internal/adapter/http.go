package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/kessan-converter/internal/config"
	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/utils"
	"github.com/MKhiriev/kessan-converter/models"
)

type httpConverterAdapter struct {
	client *utils.HTTPClient

	endpoint  string
	healthURL string

	logger *logger.Logger
}

// NewHTTPConverterAdapter constructs the resty-backed [ConverterAdapter].
//
// The conversion endpoint is adapterCfg.APIURL when it is absolute, or
// adapterCfg.APIURL resolved against adapterCfg.HTTPAddress otherwise. The
// health probe path is resolved against the endpoint host. A zero
// RequestTimeout leaves requests unbounded.
//
// Returns [ErrInvalidEndpoint] (wrapped) if no absolute http(s) URL can be
// built.
func NewHTTPConverterAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ConverterAdapter, error) {
	endpoint, err := resolveEndpoint(adapterCfg.HTTPAddress, adapterCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	healthPath := adapterCfg.HealthPath
	if healthPath == "" {
		healthPath = config.DefaultHealthPath
	}
	healthURL, err := resolveEndpoint(endpoint, healthPath)
	if err != nil {
		return nil, fmt.Errorf("%w: health path: %w", ErrInvalidEndpoint, err)
	}

	client := utils.NewHTTPClient(logger)
	client.SetTimeout(adapterCfg.RequestTimeout)

	logger.Info().
		Str("endpoint", endpoint).
		Dur("timeout", adapterCfg.RequestTimeout).
		Msg("converter adapter created")

	return &httpConverterAdapter{
		client:    client,
		endpoint:  endpoint,
		healthURL: healthURL,
		logger:    logger,
	}, nil
}

// resolveEndpoint returns ref as is when it is an absolute URL and resolves
// it against base otherwise. A base without a scheme is treated as http.
func resolveEndpoint(base, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("empty endpoint")
	}

	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	if refURL.IsAbs() {
		return checkHTTPURL(refURL)
	}

	base = strings.TrimSpace(base)
	if base == "" {
		return "", fmt.Errorf("relative endpoint %q needs a base address", ref)
	}
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}

	return checkHTTPURL(baseURL.ResolveReference(refURL))
}

func checkHTTPURL(u *url.URL) (string, error) {
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}
	return u.String(), nil
}

// Endpoint implements [ConverterAdapter].
func (h *httpConverterAdapter) Endpoint() string {
	return h.endpoint
}

// Convert implements [ConverterAdapter]. It POSTs req to the conversion
// endpoint as multipart/form-data and returns the response body as the
// spreadsheet blob.
func (h *httpConverterAdapter) Convert(ctx context.Context, req models.UploadRequest) (models.ConversionResult, error) {
	log := h.logger.With().Str("file", req.FileName).Int("size", len(req.Content)).Logger()
	log.Debug().Str("endpoint", h.endpoint).Msg("posting file for conversion")

	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader(models.FormFieldFile, req.FileName, bytes.NewReader(req.Content)).
		Post(h.endpoint)
	if err != nil {
		log.Warn().Err(err).Msg("conversion request failed")
		return models.ConversionResult{}, newTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Int("status", resp.StatusCode()).Err(err).Msg("conversion rejected by server")
		return models.ConversionResult{}, err
	}

	log.Debug().Int("status", resp.StatusCode()).Int("result_size", len(resp.Body())).Msg("conversion succeeded")

	return models.ConversionResult{
		Content:     resp.Body(),
		FileName:    models.DefaultDownloadName,
		ContentType: resp.Header().Get("Content-Type"),
	}, nil
}

// Health implements [ConverterAdapter]. It GETs the health probe and decodes
// the JSON status. A non-2xx answer is reported as a [*ServerError].
func (h *httpConverterAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&status).
		Get(h.healthURL)
	if err != nil {
		return models.HealthStatus{}, newTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	return status, nil
}
