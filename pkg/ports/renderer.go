package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts raster image operations.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas with the specified dimensions and background color.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// DecodeImage decodes image data into an image.Image.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image

	// CloneImage returns a copy of img with bounds starting at (0,0)
	// and an alpha channel. The source image is never modified.
	CloneImage(img image.Image) *image.NRGBA

	// BlurImage returns a gaussian-blurred copy of img. When sigma is
	// zero or negative it is derived from radius (radius/2), matching
	// the convention of radius/sigma parameter pairs; otherwise radius
	// is ignored by the approximation.
	BlurImage(img image.Image, radius, sigma float64) image.Image
}

// Canvas provides drawing operations for compositing images and text.
type Canvas interface {
	// DrawImage draws an image at the specified position.
	DrawImage(img image.Image, x, y int)

	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h int, c color.Color)

	// FillLinearGradient fills a rectangle with a vertical linear
	// gradient whose first pixel row is exactly the start color and
	// whose last pixel row is exactly the end color.
	FillLinearGradient(x, y, w, h int, start, end color.Color)

	// DrawText draws a single line of text with its baseline at y.
	DrawText(text string, x, y int, style TextStyle) error

	// DrawMultilineText draws newline-separated text with the first
	// baseline at y, advancing one line height per line.
	DrawMultilineText(text string, x, y int, style TextStyle) error

	// MeasureText returns the width and height of a single line of text.
	MeasureText(text string, style TextStyle) (width, height float64, err error)

	// MeasureMultilineText returns the bounding width and total height
	// of newline-separated text.
	MeasureMultilineText(text string, style TextStyle) (width, height float64, err error)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// TextStyle defines text rendering properties. It deliberately
// enumerates every supported attribute; there is no dynamic attribute
// dispatch, so unknown attributes cannot be smuggled in.
type TextStyle struct {
	FontSize float64
	FontPath string
	Color    color.Color

	// LineSpacing is the multiplier applied to the font height when
	// advancing between lines. Zero means 1.0.
	LineSpacing float64
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
	// FormatAuto lets the decoder sniff the format from the data.
	// It is not a valid encoding format.
	FormatAuto
)

// String returns the conventional name of the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	default:
		return "png"
	}
}

// ParseImageFormat parses a format name ("png", "jpeg", "jpg").
// Unknown names fall back to PNG.
func ParseImageFormat(s string) ImageFormat {
	switch s {
	case "jpeg", "jpg":
		return FormatJPEG
	default:
		return FormatPNG
	}
}
