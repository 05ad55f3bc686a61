package client

import (
	"bytes"
	"context"
	"testing"

	"github.com/MKhiriev/kessan-converter/internal/config"
	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/mock"
	"github.com/MKhiriev/kessan-converter/internal/service"
	"github.com/MKhiriev/kessan-converter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	runs int
	path string
}

func (f *fakeUI) Run(_ context.Context, path string) error {
	f.runs++
	f.path = path
	return nil
}

func newTestApp(t *testing.T, inputFile string, ui UI) (*App, *mock.MockClientConvertService, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientConvertService(ctrl)
	svc.EXPECT().Endpoint().Return("http://localhost:8000/api/convert").AnyTimes()

	var out, errOut bytes.Buffer
	app, err := NewApp(
		&service.ClientServices{ConvertService: svc},
		ui,
		config.ClientApp{InputFile: inputFile},
		&out, &errOut,
		logger.Nop(),
	)
	require.NoError(t, err)
	return app, svc, &out, &errOut
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, config.ClientApp{}, nil, nil, logger.Nop())
	assert.Error(t, err)

	ctrl := gomock.NewController(t)
	services := &service.ClientServices{ConvertService: mock.NewMockClientConvertService(ctrl)}

	_, err = NewApp(services, nil, config.ClientApp{}, nil, nil, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(services, nil, config.ClientApp{InputFile: "a.pdf"}, nil, nil, logger.Nop())
	assert.NoError(t, err)
}

func TestApp_Run_Interactive(t *testing.T) {
	ui := &fakeUI{}
	app, svc, _, _ := newTestApp(t, "", ui)
	svc.EXPECT().SubmitFile(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.runs)
}

func TestApp_Run_OneShotSuccess(t *testing.T) {
	app, svc, out, errOut := newTestApp(t, "report.pdf", nil)
	svc.EXPECT().SubmitFile(gomock.Any(), "report.pdf").
		Return(models.Succeeded("/home/user/事業年度終了届出書.xlsx"), nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "/home/user/事業年度終了届出書.xlsx\n")
	assert.Empty(t, errOut.String())
}

func TestApp_Run_OneShotFailure(t *testing.T) {
	app, svc, out, errOut := newTestApp(t, "report.txt", nil)
	svc.EXPECT().SubmitFile(gomock.Any(), "report.txt").
		Return(models.Failed("PDFファイルのみ対応しています"), nil)

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, ErrConversionFailed)
	assert.Equal(t, "PDFファイルのみ対応しています\n", errOut.String())
	assert.NotContains(t, out.String(), ".xlsx")
}

func TestApp_Run_OneShotInProgress(t *testing.T) {
	app, svc, _, _ := newTestApp(t, "report.pdf", nil)
	svc.EXPECT().SubmitFile(gomock.Any(), "report.pdf").
		Return(models.Outcome{}, service.ErrSubmissionInProgress)

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, service.ErrSubmissionInProgress)
}
