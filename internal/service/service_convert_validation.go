package service

import (
	"context"

	"github.com/MKhiriev/kessan-converter/internal/validators"
	"github.com/MKhiriev/kessan-converter/models"
)

type ConvertValidationService struct {
	inner     ConvertService
	validator validators.Validator
}

func NewConvertValidationService(maxSize int64) ConvertServiceWrapper {
	return &ConvertValidationService{
		validator: validators.NewDocumentValidator(maxSize),
	}
}

func (v *ConvertValidationService) Convert(ctx context.Context, doc models.ConvertDocument) ([]byte, error) {
	// the validation error text is the detail shown to the user
	if err := v.validator.Validate(ctx, doc); err != nil {
		return nil, err
	}

	return v.inner.Convert(ctx, doc)
}

func (v *ConvertValidationService) Wrap(wrapped ConvertService) ConvertService {
	v.inner = wrapped
	return v
}
