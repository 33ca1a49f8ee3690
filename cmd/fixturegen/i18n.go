// Package main provides localization for the fixturegen CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Generate text fixture files of known approximate size": "サイズが既知のテキストフィクスチャファイルを生成",

		// Generate command
		"Generate the configured fixture files":                           "設定されたフィクスチャファイルを生成",
		"Output directory for the generated files":                        "生成ファイルの出力ディレクトリ",
		"YAML fixture set file (default: built-in small/medium/big set)":  "YAMLフィクスチャセットファイル（デフォルト: 組み込みの small/medium/big セット）",
		"Directory to save plan and report manifests as JSON":             "計画とレポートのマニフェストをJSONで保存するディレクトリ",
		"Write a markdown run summary to this path":                       "Markdown形式の実行サマリーをこのパスに書き込み",
		"Show a progress bar for size-driven files":                       "サイズ駆動のファイルにプログレスバーを表示",
		"Log level (debug, info, warn, error)":                            "ログレベル (debug, info, warn, error)",
		"Suppress all log output":                                         "すべてのログ出力を抑制",
	})
}
