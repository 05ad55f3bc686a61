package tui

import (
	"github.com/MKhiriev/kessan-converter/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// inputCapturer is implemented by pages that sometimes consume letter keys
// themselves, as text or by ignoring them.
type inputCapturer interface {
	capturesInput() bool
}

// RootModel wraps the active page:
// 1) handles global Ctrl+C quit
// 2) toggles the build info window
// 3) delegates all other messages to the page
type RootModel struct {
	page      tea.Model
	buildInfo models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel opens page as the active page.
func NewRootModel(page tea.Model, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		page:      page,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.page == nil {
		return nil
	}
	return r.page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return r, tea.Quit
		}

		if r.showBuildInfo {
			if key.Matches(keyMsg, keys.esc, keys.buildInfo) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		if key.Matches(keyMsg, keys.buildInfo) && !r.pageCapturesInput() {
			r.showBuildInfo = true
			return r, nil
		}
	}

	if r.page == nil {
		return r, nil
	}

	updated, cmd := r.page.Update(msg)
	r.page = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.page == nil {
		return renderPage("kessan-converter", "", "")
	}
	return r.page.View()
}

func (r RootModel) pageCapturesInput() bool {
	c, ok := r.page.(inputCapturer)
	return ok && c.capturesInput()
}
