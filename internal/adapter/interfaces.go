// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the client side of the conversion endpoint's
// HTTP contract.
//
// The primary abstraction is [ConverterAdapter], which decouples the upload
// client from the transport. The package ships an HTTP/REST implementation
// ([NewHTTPConverterAdapter]) built on resty.
//
// Failures come back as one of two error types so callers can tell them apart
// with [errors.As] or [errors.Is]: [*ServerError] ([ErrConversionFailed]) for
// non-2xx responses and [*TransportError] ([ErrTransport]) for everything that
// kept a response from arriving.
package adapter

import (
	"context"

	"github.com/MKhiriev/kessan-converter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/converter_adapter_mock.go -package=mock

// ConverterAdapter defines transport-agnostic communication with the
// conversion backend.
type ConverterAdapter interface {
	// Convert posts req as multipart/form-data (one part named "file") to the
	// conversion endpoint. On a 2xx response the body is returned untouched
	// as the spreadsheet blob under [models.DefaultDownloadName]. A non-2xx
	// response yields a [*ServerError]; a request that produced no response
	// yields a [*TransportError]. Requests are never retried.
	Convert(ctx context.Context, req models.UploadRequest) (models.ConversionResult, error)

	// Health queries the backend health probe.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Endpoint returns the resolved conversion URL.
	Endpoint() string
}
