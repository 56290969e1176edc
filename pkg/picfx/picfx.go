// Package picfx provides a high-level API for fade compositing and
// text-image generation.
package picfx

import (
	"fmt"

	"github.com/user/picfx/pkg/adapters/ggrenderer"
)

// Version is the picfx version, overridable at build time.
var Version = "dev"

// fontReferenceURL points at instructions for installing a usable font.
const fontReferenceURL = "https://github.com/user/picfx#fonts"

// Supported reports whether text rendering has a usable TrueType font
// available. Fade compositing works regardless; only text-image
// generation with scalable metrics depends on a resolvable font.
func Supported() bool {
	return ggrenderer.ResolveFontPath("") != ""
}

// Ensure fails fast with a descriptive error when no TrueType font can
// be resolved. The error names the missing dependency and how to
// provide it.
func Ensure() error {
	if Supported() {
		return nil
	}
	return fmt.Errorf(
		"no TrueType font found: install a system font such as DejaVu Sans or set PICFX_FONT to a .ttf path (see %s)",
		fontReferenceURL,
	)
}
