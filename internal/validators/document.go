package validators

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/kessan-converter/models"
)

// Field name constants used to restrict validation to a subset of checks.
const (
	// FieldFileName requires a non-blank client file name.
	FieldFileName = "file_name"

	// FieldExtension requires the file name to end in ".pdf" (any case).
	FieldExtension = "extension"

	// FieldContent requires a non-empty payload.
	FieldContent = "content"

	// FieldSize caps the payload at the configured maximum.
	FieldSize = "size"
)

// defaultDocumentFields is the order checks run in when no fields are given.
var defaultDocumentFields = []string{FieldFileName, FieldExtension, FieldContent, FieldSize}

const megabyte = 1 << 20

// DocumentValidator checks uploads accepted by the conversion endpoint.
type DocumentValidator struct {
	maxSize int64
}

// NewDocumentValidator returns a [Validator] for [models.ConvertDocument]
// values that rejects payloads larger than maxSize bytes.
func NewDocumentValidator(maxSize int64) Validator {
	return &DocumentValidator{maxSize: maxSize}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ConvertDocument:
		return v.validateDocument(ctx, value, fields...)
	case *models.ConvertDocument:
		if value == nil {
			return ErrNoFileSelected
		}
		return v.validateDocument(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// validateDocument returns the first failed check. The order matches what
// the user can fix first: pick a file, pick a PDF, pick a non-empty one.
func (v *DocumentValidator) validateDocument(_ context.Context, doc models.ConvertDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultDocumentFields
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			if strings.TrimSpace(doc.FileName) == "" {
				return ErrNoFileSelected
			}
		case FieldExtension:
			if !strings.EqualFold(filepath.Ext(doc.FileName), ".pdf") {
				return ErrNotPDF
			}
		case FieldContent:
			if len(doc.Content) == 0 {
				return ErrEmptyFile
			}
		case FieldSize:
			if v.maxSize > 0 && int64(len(doc.Content)) > v.maxSize {
				return TooLarge(v.maxSize)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// TooLarge returns [ErrFileTooLarge] annotated with the limit the way the
// endpoint reports it, e.g. "ファイルサイズが大きすぎます（最大10MB）".
func TooLarge(maxSize int64) error {
	if maxSize%megabyte == 0 {
		return fmt.Errorf("%w（最大%dMB）", ErrFileTooLarge, maxSize/megabyte)
	}
	return fmt.Errorf("%w（最大%dバイト）", ErrFileTooLarge, maxSize)
}
