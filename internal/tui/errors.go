// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/kessan-converter/models"
)

// healthLine renders the result of a health probe. Errors are shown as
// returned by the service, including unreachable-server errors.
func healthLine(status models.HealthStatus, err error) string {
	if err != nil {
		return "サーバー確認に失敗しました: " + err.Error()
	}

	template := "なし"
	if status.TemplateExists {
		template = "あり"
	}

	line := fmt.Sprintf("サーバー: %s（テンプレート: %s）", status.Status, template)
	if status.Message != "" {
		line += " " + status.Message
	}
	return line
}
