// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/picfx/pkg/ports"
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// CreateCanvas creates a new drawing canvas.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc}
}

// DecodeImage decodes image data into an image.Image.
func (r *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	reader := bytes.NewReader(data)

	switch format {
	case ports.FormatJPEG:
		return jpeg.Decode(reader)
	case ports.FormatPNG:
		return png.Decode(reader)
	default:
		// Try to auto-detect
		img, _, err := image.Decode(reader)
		return img, err
	}
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// ResizeImage resizes an image to the specified dimensions.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// CloneImage returns a copy of img with bounds starting at (0,0).
// The copy always carries an alpha channel.
func (r *Renderer) CloneImage(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// BlurImage returns a gaussian-blurred copy of img. The imaging
// approximation is parameterized by sigma only; when sigma is zero or
// negative it is derived from radius as radius/2, otherwise radius is
// ignored. A non-positive effective sigma returns an unblurred copy.
func (r *Renderer) BlurImage(img image.Image, radius, sigma float64) image.Image {
	if sigma <= 0 {
		sigma = radius / 2
	}
	if sigma <= 0 {
		return imaging.Clone(img)
	}
	return imaging.Blur(img, sigma)
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc *gg.Context
}

// DrawImage draws an image at the specified position.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.dc.DrawImage(img, x, y)
}

// DrawRect draws a filled rectangle.
func (c *Canvas) DrawRect(x, y, w, h int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

// FillLinearGradient fills a rectangle with a vertical linear gradient.
// The gradient spans pixel centers: the first row of the rectangle is
// exactly the start color and the last row exactly the end color.
func (c *Canvas) FillLinearGradient(x, y, w, h int, start, end color.Color) {
	if h <= 1 {
		c.DrawRect(x, y, w, h, start)
		return
	}
	// The pattern is sampled at integer pixel coordinates, so the
	// gradient runs from the first row to the last row inclusive.
	grad := gg.NewLinearGradient(float64(x), float64(y), float64(x), float64(y+h-1))
	grad.AddColorStop(0, start)
	grad.AddColorStop(1, end)
	c.dc.SetFillStyle(grad)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

// applyTextStyle sets the drawing color and font face for a text
// operation. Loading a font face fails hard: rendering with a face the
// caller did not ask for would silently change metrics.
func (c *Canvas) applyTextStyle(style ports.TextStyle) error {
	if style.Color != nil {
		c.dc.SetColor(style.Color)
	}
	if style.FontPath != "" {
		size := style.FontSize
		if size <= 0 {
			size = 14
		}
		if err := c.dc.LoadFontFace(style.FontPath, size); err != nil {
			return fmt.Errorf("load font face %s: %w", style.FontPath, err)
		}
	}
	return nil
}

// lineHeight returns the baseline-to-baseline advance for the style.
func (c *Canvas) lineHeight(style ports.TextStyle) float64 {
	spacing := style.LineSpacing
	if spacing <= 0 {
		spacing = 1.0
	}
	return c.dc.FontHeight() * spacing
}

// DrawText draws a single line of text with its baseline at y.
func (c *Canvas) DrawText(text string, x, y int, style ports.TextStyle) error {
	if err := c.applyTextStyle(style); err != nil {
		return err
	}
	c.dc.DrawString(text, float64(x), float64(y))
	return nil
}

// DrawMultilineText draws newline-separated text with the first
// baseline at y, advancing one line height per line.
func (c *Canvas) DrawMultilineText(text string, x, y int, style ports.TextStyle) error {
	if err := c.applyTextStyle(style); err != nil {
		return err
	}
	advance := c.lineHeight(style)
	baseline := float64(y)
	for _, line := range strings.Split(text, "\n") {
		c.dc.DrawString(line, float64(x), baseline)
		baseline += advance
	}
	return nil
}

// MeasureText returns the width and height of a single line of text.
func (c *Canvas) MeasureText(text string, style ports.TextStyle) (float64, float64, error) {
	if err := c.applyTextStyle(style); err != nil {
		return 0, 0, err
	}
	w, h := c.dc.MeasureString(text)
	return w, h, nil
}

// MeasureMultilineText returns the bounding width and total height of
// newline-separated text, using the style's line spacing.
func (c *Canvas) MeasureMultilineText(text string, style ports.TextStyle) (float64, float64, error) {
	if err := c.applyTextStyle(style); err != nil {
		return 0, 0, err
	}
	advance := c.lineHeight(style)
	var width float64
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		w, _ := c.dc.MeasureString(line)
		if w > width {
			width = w
		}
	}
	return width, advance * float64(len(lines)), nil
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
