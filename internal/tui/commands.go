package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/kessan-converter/internal/service"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func cmdSubmit(ctx context.Context, svc service.ClientConvertService, path string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := svc.SubmitFile(ctx, path)
		return submitDoneMsg{outcome: outcome, err: err}
	}
}

func cmdHealth(ctx context.Context, svc service.ClientConvertService) tea.Cmd {
	return func() tea.Msg {
		status, err := svc.CheckHealth(ctx)
		return healthDoneMsg{status: status, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
