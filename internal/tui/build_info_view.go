// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/kessan-converter/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("アプリケーション: kessan-converter\n")
	b.WriteString("バージョン: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("ビルド日時: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("コミット: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage("バージョン情報", b.String(), "esc: 戻る")
}
