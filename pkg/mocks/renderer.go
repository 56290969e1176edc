package mocks

import (
	"image"
	"image/color"

	"github.com/user/picfx/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte, format ports.ImageFormat) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image
	CloneImageFunc   func(img image.Image) *image.NRGBA
	BlurImageFunc    func(img image.Image, radius, sigma float64) image.Image
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return &Canvas{width: width, height: height}
}

func (m *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data, format)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) CloneImage(img image.Image) *image.NRGBA {
	if m.CloneImageFunc != nil {
		return m.CloneImageFunc(img)
	}
	b := img.Bounds()
	return image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
}

func (m *Renderer) BlurImage(img image.Image, radius, sigma float64) image.Image {
	if m.BlurImageFunc != nil {
		return m.BlurImageFunc(img, radius, sigma)
	}
	return img
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas.
type Canvas struct {
	width  int
	height int

	DrawTextFunc             func(text string, x, y int, style ports.TextStyle) error
	DrawMultilineTextFunc    func(text string, x, y int, style ports.TextStyle) error
	MeasureTextFunc          func(text string, style ports.TextStyle) (float64, float64, error)
	MeasureMultilineTextFunc func(text string, style ports.TextStyle) (float64, float64, error)
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {}

func (m *Canvas) FillLinearGradient(x, y, w, h int, start, end color.Color) {}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) error {
	if m.DrawTextFunc != nil {
		return m.DrawTextFunc(text, x, y, style)
	}
	return nil
}

func (m *Canvas) DrawMultilineText(text string, x, y int, style ports.TextStyle) error {
	if m.DrawMultilineTextFunc != nil {
		return m.DrawMultilineTextFunc(text, x, y, style)
	}
	return nil
}

func (m *Canvas) MeasureText(text string, style ports.TextStyle) (float64, float64, error) {
	if m.MeasureTextFunc != nil {
		return m.MeasureTextFunc(text, style)
	}
	return float64(len(text)), 13, nil
}

func (m *Canvas) MeasureMultilineText(text string, style ports.TextStyle) (float64, float64, error) {
	if m.MeasureMultilineTextFunc != nil {
		return m.MeasureMultilineTextFunc(text, style)
	}
	return float64(len(text)), 13, nil
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

var _ ports.Canvas = (*Canvas)(nil)
