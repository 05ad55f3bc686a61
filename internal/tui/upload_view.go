package tui

import (
	"strings"

	"github.com/MKhiriev/kessan-converter/models"
)

const pageTitle = "決算報告書 PDF→Excel 変換"

var supportedDocuments = []string{
	"貸借対照表",
	"損益計算書",
	"完成工事原価報告書",
	"株主資本等変動計算書",
}

func (m *UploadModel) View() string {
	switch m.state.Phase {
	case models.PhaseLoading:
		return renderPage(pageTitle, m.loadingView(), "")
	case models.PhaseFailed:
		overlay := errorOverlayModel{message: m.state.Message}
		return renderPage(pageTitle, m.formView()+"\n\n"+overlay.View(), "enter / esc: 閉じる")
	default:
		return renderPage(pageTitle, m.formView(), m.hotKeys())
	}
}

func (m *UploadModel) loadingView() string {
	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(" 変換処理中...\n\n")
	b.WriteString(helpStyle.Render("処理時間: 約10〜30秒"))
	return b.String()
}

func (m *UploadModel) formView() string {
	var b strings.Builder

	b.WriteString("建設業の決算報告書PDFを所定のExcelフォーマットに変換します\n\n")
	b.WriteString("PDFファイルのパス:\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString("対応書類\n")
	for _, doc := range supportedDocuments {
		b.WriteString("  ✓ ")
		b.WriteString(doc)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("処理時間: 約10〜30秒"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("送信先: " + m.endpoint))

	if m.state.Phase == models.PhaseSucceeded {
		b.WriteString("\n\n")
		b.WriteString(successStyle.Render("変換が完了しました"))
		b.WriteString("\n保存先: ")
		b.WriteString(m.state.SavedPath)
	}
	if m.health != "" {
		b.WriteString("\n\n")
		b.WriteString(m.health)
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return b.String()
}

func (m *UploadModel) hotKeys() string {
	if m.input.Focused() {
		return "enter: 変換 • esc: 操作モード"
	}
	hotKeys := "enter/tab: パス入力 • h: サーバー確認 • v: バージョン • q: 終了"
	if m.state.SavedPath != "" {
		hotKeys = "c: 保存先をコピー • " + hotKeys
	}
	return hotKeys
}
