package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/user/picfx/pkg/ports"
)

func TestRenderer_CreateCanvas(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(100, 100, color.White)
	if canvas == nil {
		t.Fatal("expected canvas to be created")
	}

	img := canvas.ToImage()
	bounds := img.Bounds()

	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Errorf("expected 100x100, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_EncodeDecodePNG(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 30, 30))

	data, err := r.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty data")
	}

	decoded, err := r.DecodeImage(data, ports.FormatPNG)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 30 {
		t.Errorf("expected 30x30, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_DecodeAuto(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	data, err := r.EncodeImage(img, ports.FormatJPEG, 80)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	decoded, err := r.DecodeImage(data, ports.FormatAuto)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	if bounds := decoded.Bounds(); bounds.Dx() != 10 {
		t.Errorf("expected width 10, got %d", bounds.Dx())
	}
}

func TestRenderer_CloneImageIsIndependent(t *testing.T) {
	r := New()

	src := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	src.SetNRGBA(0, 0, color.NRGBA{R: 9, A: 255})

	clone := r.CloneImage(src)
	clone.SetNRGBA(0, 0, color.NRGBA{G: 9, A: 255})

	if got := src.NRGBAAt(0, 0); got.G != 0 || got.R != 9 {
		t.Errorf("source was mutated: %+v", got)
	}
}

func TestRenderer_CloneImageNormalizesBounds(t *testing.T) {
	r := New()

	src := image.NewNRGBA(image.Rect(3, 3, 8, 8))
	clone := r.CloneImage(src)

	if b := clone.Bounds(); b.Min.X != 0 || b.Min.Y != 0 || b.Dx() != 5 {
		t.Errorf("expected zero-origin 5x5 clone, got %v", b)
	}
}

func TestRenderer_ResizeImage(t *testing.T) {
	r := New()

	src := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, A: 255})
		}
	}

	dst := r.ResizeImage(src, 10, 5)
	if b := dst.Bounds(); b.Dx() != 10 || b.Dy() != 5 {
		t.Errorf("expected 10x5 output, got %dx%d", b.Dx(), b.Dy())
	}
	if c := color.NRGBAModel.Convert(dst.At(5, 2)).(color.NRGBA); c.R < 190 {
		t.Errorf("expected source color preserved through resample, got %d", c.R)
	}
}

func TestRenderer_BlurImage(t *testing.T) {
	r := New()

	// A hard edge blurs into intermediate values.
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 5; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
		for x := 5; x < 10; x++ {
			src.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}

	blurred := r.BlurImage(src, 4, 0)
	if c := color.NRGBAModel.Convert(blurred.At(5, 5)).(color.NRGBA); c.R == 0 || c.R == 255 {
		t.Errorf("expected blurred edge value, got %d", c.R)
	}
}

func TestRenderer_BlurImageZeroSigmaIsCopy(t *testing.T) {
	r := New()

	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(1, 1, color.NRGBA{B: 77, A: 255})

	out := r.BlurImage(src, 0, 0)
	outN, ok := out.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected *image.NRGBA, got %T", out)
	}
	if !bytes.Equal(outN.Pix, src.Pix) {
		t.Error("expected unmodified copy for zero radius and sigma")
	}
	if outN == src {
		t.Error("expected a copy, got the same image")
	}
}

func TestCanvas_FillLinearGradientEndpoints(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(4, 10, color.Transparent)
	canvas.FillLinearGradient(0, 0, 4, 10, color.NRGBA{A: 255}, color.NRGBA{})

	img := canvas.ToImage()
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0xffff {
		t.Errorf("expected fully opaque first row, got %d", a)
	}
	if _, _, _, a := img.At(0, 9).RGBA(); a != 0 {
		t.Errorf("expected fully transparent last row, got %d", a)
	}

	_, _, _, mid := img.At(0, 5).RGBA()
	if mid == 0 || mid == 0xffff {
		t.Errorf("expected intermediate alpha mid-band, got %d", mid)
	}
}

func TestCanvas_MeasureText(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(1, 1, color.Transparent)

	// The built-in face advances 7px per glyph and is 13px tall.
	w, h, err := canvas.MeasureText("abc", ports.TextStyle{})
	if err != nil {
		t.Fatalf("MeasureText failed: %v", err)
	}
	if w != 21 {
		t.Errorf("expected width 21, got %f", w)
	}
	if h != 13 {
		t.Errorf("expected height 13, got %f", h)
	}
}

func TestCanvas_MeasureMultilineText(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(1, 1, color.Transparent)

	w, h, err := canvas.MeasureMultilineText("ab\ncdef", ports.TextStyle{})
	if err != nil {
		t.Fatalf("MeasureMultilineText failed: %v", err)
	}
	if w != 28 {
		t.Errorf("expected width of widest line (28), got %f", w)
	}
	if h != 26 {
		t.Errorf("expected two line heights (26), got %f", h)
	}
}

func TestCanvas_DrawMultilineText(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(60, 40, color.White)

	err := canvas.DrawMultilineText("ab\ncd", 5, 13, ports.TextStyle{Color: color.Black})
	if err != nil {
		t.Fatalf("DrawMultilineText failed: %v", err)
	}

	img := canvas.ToImage()
	if !hasDarkPixel(img, 0, 13) {
		t.Error("expected text pixels on the first line")
	}
	if !hasDarkPixel(img, 13, 26) {
		t.Error("expected text pixels on the second line")
	}
}

func TestCanvas_DrawTextBadFontFails(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(10, 10, color.White)

	err := canvas.DrawText("x", 0, 8, ports.TextStyle{FontPath: "/nonexistent/font.ttf", FontSize: 12})
	if err == nil {
		t.Error("expected error for missing font file")
	}
}

// hasDarkPixel reports whether any pixel in rows [y0,y1) is dark.
func hasDarkPixel(img image.Image, y0, y1 int) bool {
	bounds := img.Bounds()
	for y := y0; y < y1 && y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if r, g, b, _ := img.At(x, y).RGBA(); r < 0x8000 && g < 0x8000 && b < 0x8000 {
				return true
			}
		}
	}
	return false
}
