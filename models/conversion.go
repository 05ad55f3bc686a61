// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

const (
	// DefaultDownloadName is the file name every converted spreadsheet is
	// saved under, whatever name the server suggests.
	DefaultDownloadName = "事業年度終了届出書.xlsx"

	// SpreadsheetContentType is the media type of an .xlsx document.
	SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// FallbackErrorMessage is shown when the server rejects a conversion
	// without a usable detail message.
	FallbackErrorMessage = "変換に失敗しました"
)

// ConversionResult is a successfully converted document as returned by the
// conversion endpoint.
type ConversionResult struct {
	// Content is the spreadsheet blob. It is not inspected by the client.
	Content []byte

	// FileName is the name the blob is delivered under.
	// Always [DefaultDownloadName].
	FileName string

	// ContentType echoes the response Content-Type header, if any.
	ContentType string
}

// ErrorResponse is the JSON body of a non-2xx conversion response.
//
// Detail is kept raw because the backend may send a string or, for request
// validation failures, a structured list.
type ErrorResponse struct {
	Detail json.RawMessage `json:"detail,omitempty"`
}

// Message returns the detail text when detail is a non-empty JSON string and
// "" otherwise.
func (e ErrorResponse) Message() string {
	raw := bytes.TrimSpace(e.Detail)
	if len(raw) == 0 || raw[0] != '"' {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// HealthStatus is the payload of the conversion backend's health probe.
type HealthStatus struct {
	Status         string `json:"status"`
	TemplateExists bool   `json:"template_exists"`
	TemplatePath   string `json:"template_path,omitempty"`
	Message        string `json:"message"`
}

// Healthy reports whether the backend declared itself ready to convert.
func (h HealthStatus) Healthy() bool {
	return h.Status == "healthy"
}
