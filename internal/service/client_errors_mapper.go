// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/kessan-converter/internal/adapter"
	"github.com/MKhiriev/kessan-converter/models"
)

// failureMessage picks the text shown to the user for a failed submission.
// Server rejections carry their detail; everything else (unreachable server,
// unreadable file, failed delivery) is shown as the error's own text.
func failureMessage(err error) string {
	var serverErr *adapter.ServerError
	if errors.As(err, &serverErr) {
		if serverErr.Detail == "" {
			return models.FallbackErrorMessage
		}
		return serverErr.Detail
	}

	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return models.FallbackErrorMessage
	}
	return msg
}
