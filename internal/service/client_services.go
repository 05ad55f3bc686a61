package service

import (
	"github.com/MKhiriev/kessan-converter/internal/adapter"
	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/store"
)

type ClientServices struct {
	ConvertService ClientConvertService
}

func NewClientServices(storages *store.ClientStorages, converterAdapter adapter.ConverterAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ConvertService: NewClientConvertService(converterAdapter, storages.Deliverer, storages.Uploads, logger),
	}
}
