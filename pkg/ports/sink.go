package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing artifacts for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveGradientMask saves the gradient mask built for a fade composite.
	SaveGradientMask(img image.Image) error

	// SaveBlurred saves the blurred intermediate of a fade-to-blur composite.
	SaveBlurred(img image.Image) error

	// SaveWrappedText saves the fitted, wrapped text of a text-image render.
	SaveWrappedText(text string) error

	// SaveFittedImage saves the final rendered text image.
	SaveFittedImage(img image.Image) error
}
