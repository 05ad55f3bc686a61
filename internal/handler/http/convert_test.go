package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/kessan-converter/internal/service"
	"github.com/MKhiriev/kessan-converter/internal/validators"
	"github.com/MKhiriev/kessan-converter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["detail"]
}

func TestConvert_Success(t *testing.T) {
	fake := &fakeConvertService{result: []byte("xlsx-bytes")}
	h := newTestHandler(t, &service.Services{ConvertService: fake})

	rec := httptest.NewRecorder()
	h.convert(rec, convertRequest(t, models.FormFieldFile, "決算報告書.pdf", []byte("%PDF-1.7")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.SpreadsheetContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t,
		"attachment; filename*=UTF-8''%E6%B1%BA%E7%AE%97%E5%A0%B1%E5%91%8A%E6%9B%B8_%E5%A4%89%E6%8F%9B%E7%B5%90%E6%9E%9C.xlsx",
		rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx-bytes", rec.Body.String())

	assert.Equal(t, "決算報告書.pdf", fake.got.FileName)
	assert.Equal(t, []byte("%PDF-1.7"), fake.got.Content)
}

func TestConvert_MissingFilePart(t *testing.T) {
	fake := &fakeConvertService{}
	h := newTestHandler(t, &service.Services{ConvertService: fake})

	rec := httptest.NewRecorder()
	h.convert(rec, convertRequest(t, "", "", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ファイルが選択されていません", decodeDetail(t, rec))
}

func TestConvert_WrongFieldName(t *testing.T) {
	h := newTestHandler(t, &service.Services{ConvertService: &fakeConvertService{}})

	rec := httptest.NewRecorder()
	h.convert(rec, convertRequest(t, "document", "a.pdf", []byte("%PDF")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ファイルが選択されていません", decodeDetail(t, rec))
}

func TestConvert_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "validation error",
			err:        validators.ErrNotPDF,
			wantStatus: http.StatusBadRequest,
			wantDetail: "PDFファイルのみ対応しています",
		},
		{
			name:       "too large",
			err:        validators.TooLarge(10 << 20),
			wantStatus: http.StatusBadRequest,
			wantDetail: "ファイルサイズが大きすぎます（最大10MB）",
		},
		{
			name:       "build failure",
			err:        errors.New("sheet missing"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "変換エラー: sheet missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{ConvertService: &fakeConvertService{err: tt.err}})

			rec := httptest.NewRecorder()
			h.convert(rec, convertRequest(t, models.FormFieldFile, "a.pdf", []byte("%PDF")))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// end to end through the router and real services
// ─────────────────────────────────────────────

func TestConvert_Integration(t *testing.T) {
	h, _ := newIntegrationHandler(t)
	router := h.Init()

	tests := []struct {
		name       string
		fileName   string
		content    []byte
		wantStatus int
		wantDetail string
	}{
		{name: "pdf", fileName: "決算報告書.pdf", content: []byte("%PDF-1.7"), wantStatus: http.StatusOK},
		{name: "upper-case extension", fileName: "REPORT.PDF", content: []byte("%PDF-1.7"), wantStatus: http.StatusOK},
		{name: "not a pdf", fileName: "report.xlsx", content: []byte("PK"), wantStatus: http.StatusBadRequest, wantDetail: "PDFファイルのみ対応しています"},
		{name: "empty", fileName: "empty.pdf", content: nil, wantStatus: http.StatusBadRequest, wantDetail: "ファイルが空です"},
		{name: "too large", fileName: "big.pdf", content: bytes.Repeat([]byte{'x'}, testMaxUploadSize+1), wantStatus: http.StatusBadRequest, wantDetail: "ファイルサイズが大きすぎます（最大1024バイト）"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, convertRequest(t, models.FormFieldFile, tt.fileName, tt.content))

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
				return
			}

			f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
			require.NoError(t, err)
			defer f.Close()

			assert.Len(t, f.GetSheetList(), 6)
			source, err := f.GetCellValue(f.GetSheetName(0), "B3")
			require.NoError(t, err)
			assert.Equal(t, tt.fileName, source)
		})
	}
}

func TestConvert_IntegrationRemovesStagedUpload(t *testing.T) {
	h, cfg := newIntegrationHandler(t)
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, convertRequest(t, models.FormFieldFile, "a.pdf", []byte("%PDF")))
	require.Equal(t, http.StatusOK, rec.Code)

	entries, err := readDirNames(cfg.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
