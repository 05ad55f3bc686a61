// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FormFieldFile is the multipart part name the conversion endpoint reads the
// PDF from.
const FormFieldFile = "file"

// UploadRequest is the user-selected file sent to the conversion endpoint.
//
// The payload is opaque to the client: neither the type nor the size of the
// file is checked before it is posted.
type UploadRequest struct {
	// FileName is the base name of the selected file (e.g. "report.pdf").
	// It is sent as the filename of the multipart part.
	FileName string

	// Content holds the raw file bytes.
	Content []byte
}
