// Package textimg renders auto-wrapped text onto a generated canvas.
package textimg

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/user/picfx/pkg/ports"
)

// ErrTextDoesNotFit is returned when no per-line character limit makes
// the rendered text fit the available width.
var ErrTextDoesNotFit = errors.New("text does not fit")

// Options controls the generated canvas around the text.
type Options struct {
	// BackgroundColor fills the canvas. Nil means white.
	BackgroundColor color.Color

	// Format is the encoding format used when the image is persisted.
	Format ports.ImageFormat

	// HorizontalPadding and VerticalPadding are the margins, in pixels,
	// between the canvas edges and the text block.
	HorizontalPadding int
	VerticalPadding   int

	// MaxLines caps the number of rendered lines; excess content is
	// silently dropped. Zero or negative disables the cap.
	MaxLines int
}

// DefaultOptions returns the standard canvas options.
func DefaultOptions() Options {
	return Options{
		BackgroundColor:   color.White,
		Format:            ports.FormatPNG,
		HorizontalPadding: 50,
		VerticalPadding:   20,
		MaxLines:          10,
	}
}

// DefaultTextStyle returns the standard text rendering style: black
// fill at 14pt. FontPath is left empty so the backend's built-in face
// applies unless the caller resolves a system font.
func DefaultTextStyle() ports.TextStyle {
	return ports.TextStyle{
		FontSize: 14,
		Color:    color.Black,
	}
}

// Heuristic starting guess for the per-line character limit, assuming
// roughly 5px of advance per glyph.
const approxGlyphWidth = 5

// Fitter renders text images. It holds no state between calls.
type Fitter struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewFitter creates a new Fitter.
func NewFitter(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Fitter {
	return &Fitter{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("textimg"),
	}
}

// Generate renders text onto a new canvas of the given width. The
// per-line character limit starts at safeWidth/5 and is decremented
// until the measured text width fits within the padded width. The
// canvas height is the measured text height plus vertical padding.
// Returns ErrTextDoesNotFit when the limit would drop below one
// character per line.
func (f *Fitter) Generate(width int, text string, opts Options, style ports.TextStyle) (image.Image, error) {
	safeWidth := width - 2*opts.HorizontalPadding
	if safeWidth <= 0 {
		return nil, fmt.Errorf("%w: no drawable width inside %dpx padding", ErrTextDoesNotFit, opts.HorizontalPadding)
	}

	f.logger.Debug("Fitting text into %dpx canvas (%dpx safe width)", width, safeWidth)

	if style.Color == nil {
		style.Color = DefaultTextStyle().Color
	}

	// One throwaway canvas serves all measurements.
	meas := f.renderer.CreateCanvas(1, 1, color.Transparent)

	limit := safeWidth / approxGlyphWidth
	if limit < 1 {
		limit = 1
	}

	var wrapped string
	var textHeight float64
	fitted := false
	for iterations := 1; limit >= 1; iterations++ {
		wrapped = WordWrap(text, limit, "\n", true, opts.MaxLines)

		w, h, err := meas.MeasureMultilineText(wrapped, style)
		if err != nil {
			return nil, fmt.Errorf("measure text: %w", err)
		}
		if w <= float64(safeWidth) {
			textHeight = h
			fitted = true
			f.logger.Debug("Fitted at %d chars per line after %d iterations", limit, iterations)
			break
		}
		limit--
	}
	if !fitted {
		return nil, fmt.Errorf("%w: even one character per line exceeds %dpx", ErrTextDoesNotFit, safeWidth)
	}

	if f.sink.Enabled() {
		if err := f.sink.SaveWrappedText(wrapped); err != nil {
			f.logger.Warn("Failed to save wrapped text: %s", err)
		}
	}

	fontSize := style.FontSize
	if fontSize <= 0 {
		fontSize = DefaultTextStyle().FontSize
	}
	bg := opts.BackgroundColor
	if bg == nil {
		bg = color.White
	}

	height := int(math.Ceil(textHeight)) + 2*opts.VerticalPadding
	canvas := f.renderer.CreateCanvas(width, height, bg)
	if err := canvas.DrawMultilineText(wrapped, opts.HorizontalPadding, int(fontSize)+opts.VerticalPadding, style); err != nil {
		return nil, fmt.Errorf("draw text: %w", err)
	}

	img := canvas.ToImage()
	if f.sink.Enabled() {
		if err := f.sink.SaveFittedImage(img); err != nil {
			f.logger.Warn("Failed to save fitted image: %s", err)
		}
	}
	return img, nil
}
