package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting generation":           "生成を開始します",
		"Generation completed":          "生成が完了しました",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
		"%s generated with size %d bytes.": "%s を生成しました（サイズ %d バイト）。",
		"Test files generated: %s":         "テストファイルを生成しました: %s",

		// Plan stage
		"Planning %d fixture files":                 "%d 件のフィクスチャファイルを計画中",
		"Plan computed: %d files, %d bytes total":   "計画完了: %d ファイル, 合計 %d バイト",

		// Write stage (filesystem component)
		"Writing %s":                            "%s を書き込み中",
		"Writing %s until %d bytes":             "%s を %d バイトまで書き込み中",
		"Writing %d lines to %s":                "%d 行を %s に書き込み中",
		"Wrote %d lines (%d bytes) to %s":       "%d 行（%d バイト）を %s に書き込みました",

		// Warnings
		"Generation cancelled, partial file kept: %s": "生成が中断されました。部分ファイルを保持します: %s",

		// Errors
		"Failed to compute plan: %s":   "計画の作成に失敗しました: %s",
		"Failed to generate %s: %s":    "%s の生成に失敗しました: %s",
		"Failed to write manifest: %s": "マニフェストの書き込みに失敗しました: %s",
	})
}
