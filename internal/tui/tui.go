package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/internal/service"
	"github.com/MKhiriev/kessan-converter/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the upload screen until the user quits. Cancelling ctx aborts an
// in-flight submission and stops the program.
func (t *TUI) Run(ctx context.Context, path string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	root := NewRootModel(NewUploadModel(ctx, t.services.ConvertService, path), t.buildInfo)
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Msg("tui stopped by signal")
		return nil
	}
	if err != nil {
		t.logger.Error().Err(err).Msg("tui stopped with error")
		return err
	}

	t.logger.Info().Msg("tui closed by user")
	return nil
}
