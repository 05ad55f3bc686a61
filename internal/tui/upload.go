// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/kessan-converter/internal/service"
	"github.com/MKhiriev/kessan-converter/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// UploadModel is the Bubble Tea model of the upload screen. It collects a PDF
// path, submits it through [service.ClientConvertService] and renders the
// idle, loading, failed and succeeded states.
//
// The path input starts focused; esc leaves it so the letter hotkeys work.
type UploadModel struct {
	ctx      context.Context
	convert  service.ClientConvertService
	endpoint string

	input   textinput.Model
	spinner spinner.Model

	state  models.UIState
	health string
	status string
}

// NewUploadModel creates an [UploadModel] showing the current service state.
// path pre-fills the input.
func NewUploadModel(ctx context.Context, convert service.ClientConvertService, path string) *UploadModel {
	input := textinput.New()
	input.Placeholder = "/path/to/決算報告書.pdf"
	input.CharLimit = 4096
	input.Width = 60
	input.SetValue(path)
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &UploadModel{
		ctx:      ctx,
		convert:  convert,
		endpoint: convert.Endpoint(),
		input:    input,
		spinner:  s,
		state:    convert.State(),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *UploadModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *UploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		if errors.Is(msg.err, service.ErrSubmissionInProgress) {
			m.state = m.convert.State()
			if m.state.Loading() {
				return m, nil
			}
			return m, m.input.Focus()
		}
		m.state = msg.outcome.State()
		if m.state.Phase == models.PhaseSucceeded {
			m.input.Reset()
			m.input.Blur()
		}
		return m, nil
	case healthDoneMsg:
		m.health = healthLine(msg.status, msg.err)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "コピーに失敗しました: " + msg.err.Error()
		} else {
			m.status = "保存先をクリップボードにコピーしました"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *UploadModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Loading() {
		return m, nil
	}

	if m.state.Phase == models.PhaseFailed {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.convert.DismissError()
			m.state = m.convert.State()
			return m, m.input.Focus()
		}
		return m, nil
	}

	if m.input.Focused() {
		switch {
		case key.Matches(msg, keys.enter):
			return m.submit()
		case key.Matches(msg, keys.esc):
			m.input.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.enter, keys.focus):
		return m, m.input.Focus()
	case key.Matches(msg, keys.copy):
		if m.state.SavedPath == "" {
			m.status = "コピーする保存先がありません"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(m.state.SavedPath)
	case key.Matches(msg, keys.health):
		m.health = "サーバーを確認中..."
		return m, cmdHealth(m.ctx, m.convert)
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *UploadModel) submit() (tea.Model, tea.Cmd) {
	path := m.input.Value()

	m.state = models.UIState{Phase: models.PhaseLoading}
	m.status = ""
	m.input.Blur()

	return m, tea.Batch(m.spinner.Tick, cmdSubmit(m.ctx, m.convert, path))
}

// capturesInput reports whether letter keys belong to the page: while typing
// a path, while loading and while the error overlay is open.
func (m *UploadModel) capturesInput() bool {
	return m.input.Focused() || m.state.Loading() || m.state.Phase == models.PhaseFailed
}
