package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/kessan-converter/internal/config"
	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/service"
)

type App struct {
	services  *service.ClientServices
	ui        UI
	inputFile string

	out    io.Writer
	errOut io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientApp, out, errOut io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || services.ConvertService == nil {
		return nil, fmt.Errorf("client services are not set")
	}
	if ui == nil && cfg.InputFile == "" {
		return nil, fmt.Errorf("interactive mode requires a UI")
	}

	return &App{
		services:  services,
		ui:        ui,
		inputFile: cfg.InputFile,
		out:       out,
		errOut:    errOut,
		logger:    logger,
	}, nil
}

// Run converts the configured input file once, or starts the UI when no
// input file is configured.
func (a *App) Run(ctx context.Context) error {
	if a.inputFile != "" {
		return a.runOnce(ctx)
	}

	a.logger.Info().Str("endpoint", a.services.ConvertService.Endpoint()).Msg("starting interactive client")
	return a.ui.Run(ctx, "")
}

func (a *App) runOnce(ctx context.Context) error {
	a.logger.Info().Str("file", a.inputFile).Msg("one-shot conversion")

	fmt.Fprintf(a.out, "変換処理中... (%s → %s)\n", a.inputFile, a.services.ConvertService.Endpoint())

	outcome, err := a.services.ConvertService.SubmitFile(ctx, a.inputFile)
	if err != nil {
		return fmt.Errorf("submit %s: %w", a.inputFile, err)
	}

	if !outcome.OK() {
		fmt.Fprintln(a.errOut, outcome.Message)
		return ErrConversionFailed
	}

	fmt.Fprintln(a.out, outcome.SavedPath)
	return nil
}
