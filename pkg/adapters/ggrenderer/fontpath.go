package ggrenderer

import (
	"os"
	"path/filepath"
	"runtime"
)

// ResolveFontPath resolves a TrueType font path in the following order:
// 1. If explicitPath is non-empty, use it
// 2. If PICFX_FONT environment variable is set, use it
// 3. Fall back to platform default font locations
//
// Returns an empty string when nothing resolves; text then renders with
// the built-in bitmap face, which has fixed metrics.
func ResolveFontPath(explicitPath string) string {
	// 1. Explicit path from the caller
	if explicitPath != "" {
		return explicitPath
	}

	// 2. PICFX_FONT environment variable
	if envPath := os.Getenv("PICFX_FONT"); envPath != "" {
		return envPath
	}

	// 3. Platform defaults
	return findSystemFont()
}

// findSystemFont searches common per-platform font locations for a
// general-purpose sans-serif face.
func findSystemFont() string {
	var candidates []string

	switch runtime.GOOS {
	case "darwin":
		candidates = []string{
			"/Library/Fonts/Arial.ttf",
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"/System/Library/Fonts/Helvetica.ttc",
		}
	case "linux":
		candidates = []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/TTF/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
			"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
			"/usr/share/fonts/truetype/freefont/FreeSans.ttf",
		}
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = "C:\\Windows"
		}
		candidates = []string{
			filepath.Join(windir, "Fonts", "arial.ttf"),
			filepath.Join(windir, "Fonts", "segoeui.ttf"),
		}
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}

	return ""
}
