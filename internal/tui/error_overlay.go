package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("エラー") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc: 閉じる")
	return overlayBoxStyle.Render(content)
}
