// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer messages used across the
// development server services and handlers.
//
// All Msg* constants are user-facing strings written into HTTP response
// bodies. They follow the wording of the production conversion backend so
// the client sees the same texts from both.
package app

const (
	// MsgServiceRunning is the root endpoint banner.
	MsgServiceRunning = "決算報告書PDF→Excel変換APIが稼働中"

	// MsgHealthOK is reported by a healthy backend.
	MsgHealthOK = "OK"

	// MsgTemplateMissing is reported when no workbook layout is defined.
	MsgTemplateMissing = "テンプレートが定義されていません"

	// MsgUploadDirUnavailable is reported when the staging directory is gone.
	MsgUploadDirUnavailable = "アップロードディレクトリにアクセスできません"

	// MsgConversionError prefixes the detail of an unexpected conversion
	// failure.
	MsgConversionError = "変換エラー: "

	// MsgCleanupError prefixes the detail of a failed cleanup.
	MsgCleanupError = "クリーンアップエラー: "

	// MsgCleanupDone is a format string taking the number of deleted files.
	MsgCleanupDone = "%d個の一時ファイルを削除しました"
)
