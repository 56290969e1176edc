// Package main provides localization for the picfx CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Fade compositing and fitted text images": "フェード合成とテキスト画像の生成",

		// Fade command
		"Fade an image to transparency, blur, or another image":   "画像を透明・ぼかし・別画像へフェード",
		"Fade mode (transparent, blur, transparent-blur, image)":  "フェードモード（transparent, blur, transparent-blur, image）",
		"Bottom image path (mode=image)":                          "下層画像のパス（mode=image）",
		"Fade band height in pixels":                              "フェード帯の高さ（ピクセル）",
		"Rows before the fade begins":                             "フェード開始前の行数",
		"Gaussian blur radius":                                    "ガウスぼかしの半径",
		"Gaussian blur sigma":                                     "ガウスぼかしのシグマ",
		"Blur fade band height (mode=transparent-blur)":           "ぼかしフェード帯の高さ（mode=transparent-blur）",
		"Blur fade band offset (mode=transparent-blur)":           "ぼかしフェード帯のオフセット（mode=transparent-blur）",

		// Text command
		"Render auto-wrapped text onto a generated canvas": "自動折り返しテキストをキャンバスに描画",
		"Canvas width in pixels":                           "キャンバスの幅（ピクセル）",
		"Background color (hex, e.g., #ffffff)":            "背景色（16進数、例: #ffffff）",
		"Text color (hex, e.g., #000000)":                  "文字色（16進数、例: #000000）",
		"Path to a TrueType font":                          "TrueTypeフォントのパス",
		"Font size in points":                              "フォントサイズ（ポイント）",
		"Horizontal padding in pixels":                     "左右の余白（ピクセル）",
		"Vertical padding in pixels":                       "上下の余白（ピクセル）",
		"Maximum rendered lines (0 = unlimited)":           "描画する最大行数（0 = 無制限）",

		// Ensure command
		"Verify the imaging backend can render text": "テキスト描画が可能か検証",
		"Text rendering is available":                "テキスト描画が利用可能です",

		// Common flags
		"Output image file path":               "出力画像ファイルのパス",
		"Output format (png, jpeg)":            "出力形式（png, jpeg）",
		"JPEG quality (1-100)":                 "JPEG品質（1-100）",
		"YAML configuration file":              "YAML設定ファイル",
		"Save intermediate artifacts":          "中間成果物を保存",
		"Directory for intermediate artifacts": "中間成果物の保存先ディレクトリ",
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Error messages
		"INPUT argument is required":        "INPUT引数が必要です",
		"TEXT argument is required":         "TEXT引数が必要です",
		"--bottom is required for mode=image": "mode=imageには--bottomが必要です",
		"unknown fade mode: %s":             "不明なフェードモード: %s",
	})
}
