package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Fade compositor
		"Compositing %dpx fade band at offset %d onto %dx%d": "%dpx のフェード帯をオフセット %d で %dx%d に合成中",
		"Blurring %dx%d copy (radius %.1f, sigma %.1f)":      "%dx%d のコピーをぼかし中 (半径 %.1f, シグマ %.1f)",
		"Failed to save blurred intermediate: %s":            "ぼかし中間画像の保存に失敗しました: %s",
		"Failed to save gradient mask: %s":                   "グラデーションマスクの保存に失敗しました: %s",

		// Text fitter
		"Fitting text into %dpx canvas (%dpx safe width)":  "テキストを %dpx のキャンバスに調整中 (有効幅 %dpx)",
		"Fitted at %d chars per line after %d iterations":  "1 行 %d 文字に収まりました (%d 回の試行)",
		"Failed to save wrapped text: %s":                  "折り返しテキストの保存に失敗しました: %s",
		"Failed to save fitted image: %s":                  "テキスト画像の保存に失敗しました: %s",

		// Output
		"Output saved to %s": "出力を %s に保存しました",
	})
}
