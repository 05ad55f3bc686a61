package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/kessan-converter/internal/adapter"
	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/mock"
	"github.com/MKhiriev/kessan-converter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testEndpoint = "http://localhost:8000/api/convert"

func newTestConvertSvc(t *testing.T, ctrl *gomock.Controller) (
	*clientConvertService,
	*mock.MockConverterAdapter,
	*mock.MockFileDeliverer,
	*mock.MockUploadReader,
) {
	t.Helper()
	mockAdapter := mock.NewMockConverterAdapter(ctrl)
	mockDeliverer := mock.NewMockFileDeliverer(ctrl)
	mockUploads := mock.NewMockUploadReader(ctrl)

	mockAdapter.EXPECT().Endpoint().Return(testEndpoint).AnyTimes()

	svc := NewClientConvertService(mockAdapter, mockDeliverer, mockUploads, logger.Nop()).(*clientConvertService)
	return svc, mockAdapter, mockDeliverer, mockUploads
}

func pdfRequest() models.UploadRequest {
	return models.UploadRequest{FileName: "決算報告書.pdf", Content: []byte("%PDF-1.7")}
}

func spreadsheetResult() models.ConversionResult {
	return models.ConversionResult{
		Content:     []byte("xlsx"),
		FileName:    models.DefaultDownloadName,
		ContentType: models.SpreadsheetContentType,
	}
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestClientConvertService_InitialStateIsIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestConvertSvc(t, ctrl)

	state := svc.State()
	assert.Equal(t, models.PhaseIdle, state.Phase)
	assert.False(t, state.Loading())
	assert.Empty(t, state.Error())
}

func TestClientConvertService_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockDeliverer, _ := newTestConvertSvc(t, ctrl)
	ctx := context.Background()
	req := pdfRequest()
	result := spreadsheetResult()

	gomock.InOrder(
		mockAdapter.EXPECT().Convert(ctx, req).Return(result, nil),
		mockDeliverer.EXPECT().Deliver(ctx, result).Return("/downloads/事業年度終了届出書.xlsx", nil).Times(1),
	)

	outcome, err := svc.Submit(ctx, req)

	require.NoError(t, err)
	assert.True(t, outcome.OK())
	assert.Equal(t, "/downloads/事業年度終了届出書.xlsx", outcome.SavedPath)
	assert.Empty(t, outcome.Message)

	state := svc.State()
	assert.Equal(t, models.PhaseSucceeded, state.Phase)
	assert.False(t, state.Loading())
	assert.Empty(t, state.Error())
	assert.Equal(t, outcome.SavedPath, state.SavedPath)
}

func TestClientConvertService_Submit_LoadingWhileInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockDeliverer, _ := newTestConvertSvc(t, ctrl)
	ctx := context.Background()

	// a previous failure must be cleared as soon as the next submission starts
	svc.state = models.UIState{Phase: models.PhaseFailed, Message: "前回のエラー"}

	mockAdapter.EXPECT().Convert(ctx, gomock.Any()).DoAndReturn(
		func(context.Context, models.UploadRequest) (models.ConversionResult, error) {
			state := svc.State()
			assert.True(t, state.Loading())
			assert.Empty(t, state.Error())
			return spreadsheetResult(), nil
		},
	)
	mockDeliverer.EXPECT().Deliver(ctx, gomock.Any()).Return("saved.xlsx", nil)

	_, err := svc.Submit(ctx, pdfRequest())
	require.NoError(t, err)
	assert.False(t, svc.State().Loading())
}

func TestClientConvertService_Submit_ServerErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "detail message",
			err:     &adapter.ServerError{StatusCode: http.StatusUnprocessableEntity, Detail: "ページ数が不足しています"},
			wantMsg: "ページ数が不足しています",
		},
		{
			name:    "empty detail",
			err:     &adapter.ServerError{StatusCode: http.StatusInternalServerError},
			wantMsg: models.FallbackErrorMessage,
		},
		{
			name:    "wrapped server error",
			err:     fmt.Errorf("convert: %w", &adapter.ServerError{StatusCode: http.StatusBadRequest, Detail: "PDFファイルのみ対応しています"}),
			wantMsg: "PDFファイルのみ対応しています",
		},
		{
			name:    "transport error shown verbatim",
			err:     &adapter.TransportError{Err: errors.New("dial tcp 127.0.0.1:8000: connect: connection refused")},
			wantMsg: "dial tcp 127.0.0.1:8000: connect: connection refused",
		},
		{
			name:    "plain error",
			err:     errors.New("Failed to fetch"),
			wantMsg: "Failed to fetch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter, mockDeliverer, _ := newTestConvertSvc(t, ctrl)
			ctx := context.Background()

			mockAdapter.EXPECT().Convert(ctx, gomock.Any()).Return(models.ConversionResult{}, tt.err)
			mockDeliverer.EXPECT().Deliver(gomock.Any(), gomock.Any()).Times(0)

			outcome, err := svc.Submit(ctx, pdfRequest())

			require.NoError(t, err)
			assert.False(t, outcome.OK())
			assert.Equal(t, tt.wantMsg, outcome.Message)

			state := svc.State()
			assert.Equal(t, models.PhaseFailed, state.Phase)
			assert.False(t, state.Loading())
			assert.Equal(t, tt.wantMsg, state.Error())
			assert.Empty(t, state.SavedPath)
		})
	}
}

func TestClientConvertService_Submit_DeliveryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockDeliverer, _ := newTestConvertSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Convert(ctx, gomock.Any()).Return(spreadsheetResult(), nil)
	mockDeliverer.EXPECT().Deliver(ctx, gomock.Any()).Return("", errors.New("disk full"))

	outcome, err := svc.Submit(ctx, pdfRequest())

	require.NoError(t, err)
	assert.Equal(t, models.PhaseFailed, outcome.Phase)
	assert.Equal(t, "disk full", outcome.Message)
	assert.False(t, svc.State().Loading())
}

func TestClientConvertService_Submit_RejectedWhileInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockDeliverer, _ := newTestConvertSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Convert(ctx, gomock.Any()).DoAndReturn(
		func(context.Context, models.UploadRequest) (models.ConversionResult, error) {
			_, err := svc.Submit(ctx, pdfRequest())
			assert.ErrorIs(t, err, ErrSubmissionInProgress)

			_, err = svc.SubmitFile(ctx, "/tmp/other.pdf")
			assert.ErrorIs(t, err, ErrSubmissionInProgress)

			assert.True(t, svc.State().Loading(), "rejected submission must not change state")
			return spreadsheetResult(), nil
		},
	).Times(1)
	mockDeliverer.EXPECT().Deliver(ctx, gomock.Any()).Return("saved.xlsx", nil).Times(1)

	outcome, err := svc.Submit(ctx, pdfRequest())
	require.NoError(t, err)
	assert.True(t, outcome.OK())
}

func TestClientConvertService_Submit_PanicClearsLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestConvertSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Convert(ctx, gomock.Any()).DoAndReturn(
		func(context.Context, models.UploadRequest) (models.ConversionResult, error) {
			panic("boom")
		},
	)

	assert.Panics(t, func() { _, _ = svc.Submit(ctx, pdfRequest()) })

	state := svc.State()
	assert.False(t, state.Loading())
	assert.Equal(t, models.FallbackErrorMessage, state.Error())
}

func TestClientConvertService_Submit_CanResubmitAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockDeliverer, _ := newTestConvertSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Convert(ctx, gomock.Any()).Return(models.ConversionResult{}, &adapter.ServerError{StatusCode: 500}),
		mockAdapter.EXPECT().Convert(ctx, gomock.Any()).Return(spreadsheetResult(), nil),
	)
	mockDeliverer.EXPECT().Deliver(ctx, gomock.Any()).Return("saved.xlsx", nil)

	first, err := svc.Submit(ctx, pdfRequest())
	require.NoError(t, err)
	assert.False(t, first.OK())

	second, err := svc.Submit(ctx, pdfRequest())
	require.NoError(t, err)
	assert.True(t, second.OK())
	assert.Empty(t, svc.State().Error())
}

// ── SubmitFile ───────────────────────────────────────────────────────────────

func TestClientConvertService_SubmitFile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockDeliverer, mockUploads := newTestConvertSvc(t, ctrl)
	ctx := context.Background()
	req := pdfRequest()

	gomock.InOrder(
		mockUploads.EXPECT().ReadUpload(ctx, "/tmp/決算報告書.pdf").Return(req, nil),
		mockAdapter.EXPECT().Convert(ctx, req).Return(spreadsheetResult(), nil),
		mockDeliverer.EXPECT().Deliver(ctx, gomock.Any()).Return("saved.xlsx", nil),
	)

	outcome, err := svc.SubmitFile(ctx, "/tmp/決算報告書.pdf")

	require.NoError(t, err)
	assert.True(t, outcome.OK())
}

func TestClientConvertService_SubmitFile_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, mockUploads := newTestConvertSvc(t, ctrl)
	ctx := context.Background()

	mockUploads.EXPECT().ReadUpload(ctx, "missing.pdf").Return(models.UploadRequest{}, errors.New("ファイルを開けません: no such file"))
	mockAdapter.EXPECT().Convert(gomock.Any(), gomock.Any()).Times(0)

	outcome, err := svc.SubmitFile(ctx, "missing.pdf")

	require.NoError(t, err)
	assert.Equal(t, "ファイルを開けません: no such file", outcome.Message)
	assert.Equal(t, models.PhaseFailed, svc.State().Phase)
	assert.False(t, svc.State().Loading())
}

// ── DismissError ─────────────────────────────────────────────────────────────

func TestClientConvertService_DismissError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestConvertSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Convert(ctx, gomock.Any()).Return(models.ConversionResult{}, &adapter.ServerError{StatusCode: 400, Detail: "bad"})

	_, err := svc.Submit(ctx, pdfRequest())
	require.NoError(t, err)
	require.Equal(t, "bad", svc.State().Error())

	svc.DismissError()

	state := svc.State()
	assert.Equal(t, models.PhaseIdle, state.Phase)
	assert.Empty(t, state.Error())
	assert.False(t, state.Loading())
}

func TestClientConvertService_DismissError_NoEffectWhileLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockDeliverer, _ := newTestConvertSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Convert(ctx, gomock.Any()).DoAndReturn(
		func(context.Context, models.UploadRequest) (models.ConversionResult, error) {
			svc.DismissError()
			assert.True(t, svc.State().Loading())
			return spreadsheetResult(), nil
		},
	)
	mockDeliverer.EXPECT().Deliver(ctx, gomock.Any()).Return("saved.xlsx", nil)

	_, err := svc.Submit(ctx, pdfRequest())
	require.NoError(t, err)
}

func TestClientConvertService_DismissError_KeepsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestConvertSvc(t, ctrl)

	svc.state = models.Succeeded("saved.xlsx").State()
	svc.DismissError()

	assert.Equal(t, models.PhaseSucceeded, svc.State().Phase)
}

// ── CheckHealth / Endpoint ───────────────────────────────────────────────────

func TestClientConvertService_CheckHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestConvertSvc(t, ctrl)
	ctx := context.Background()

	want := models.HealthStatus{Status: "healthy", TemplateExists: true, Message: "OK"}
	mockAdapter.EXPECT().Health(ctx).Return(want, nil)

	got, err := svc.CheckHealth(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientConvertService_Endpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestConvertSvc(t, ctrl)

	assert.Equal(t, testEndpoint, svc.Endpoint())
}

// ── failureMessage ───────────────────────────────────────────────────────────

func TestFailureMessage(t *testing.T) {
	assert.Equal(t, "detail", failureMessage(&adapter.ServerError{Detail: "detail"}))
	assert.Equal(t, models.FallbackErrorMessage, failureMessage(&adapter.ServerError{}))
	assert.Equal(t, models.FallbackErrorMessage, failureMessage(errors.New("  ")))
	assert.Equal(t, "timeout", failureMessage(&adapter.TransportError{Err: errors.New("timeout")}))
}
