package textimg

import (
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/user/picfx/pkg/adapters/ggrenderer"
	"github.com/user/picfx/pkg/adapters/logger"
	"github.com/user/picfx/pkg/adapters/nullsink"
	"github.com/user/picfx/pkg/mocks"
	"github.com/user/picfx/pkg/ports"
)

func newTestFitter() *Fitter {
	return NewFitter(ggrenderer.New(), nullsink.New(), logger.NewNoop())
}

func TestFitter_GenerateDimensions(t *testing.T) {
	fitter := newTestFitter()
	opts := DefaultOptions()
	style := DefaultTextStyle()

	img, err := fitter.Generate(400, "short text", opts, style)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 400 {
		t.Errorf("expected width 400, got %d", bounds.Dx())
	}

	// The expected height is the measured text height plus padding.
	meas := ggrenderer.New().CreateCanvas(1, 1, color.Transparent)
	_, textHeight, err := meas.MeasureMultilineText("short text", style)
	if err != nil {
		t.Fatalf("MeasureMultilineText failed: %v", err)
	}
	want := int(math.Ceil(textHeight)) + 2*opts.VerticalPadding
	if bounds.Dy() != want {
		t.Errorf("expected height %d, got %d", want, bounds.Dy())
	}
}

func TestFitter_GenerateFillsBackgroundAndDrawsText(t *testing.T) {
	fitter := newTestFitter()
	opts := DefaultOptions()

	img, err := fitter.Generate(400, "short text", opts, DefaultTextStyle())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	r, g, b, _ := img.At(0, 0).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("expected white background corner, got (%d,%d,%d)", r, g, b)
	}

	bounds := img.Bounds()
	dark := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if r, g, b, _ := img.At(x, y).RGBA(); r < 0x8000 && g < 0x8000 && b < 0x8000 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("expected some dark text pixels on the canvas")
	}
}

func TestFitter_ConvergesToNarrowerLimit(t *testing.T) {
	sink := &mocks.Sink{EnabledValue: true}
	fitter := NewFitter(ggrenderer.New(), sink, logger.NewNoop())

	opts := DefaultOptions()
	opts.MaxLines = 0

	// The built-in face advances 7px per glyph; a 100px safe width
	// fits at most 14 characters, below the 20-character first guess.
	text := strings.Repeat("x", 60)
	if _, err := fitter.Generate(200, text, opts, DefaultTextStyle()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(sink.WrappedTexts) != 1 {
		t.Fatalf("expected wrapped text saved, got %d", len(sink.WrappedTexts))
	}
	lines := strings.Split(sink.WrappedTexts[0], "\n")
	if len(lines[0]) != 14 {
		t.Errorf("expected first line fitted to 14 chars, got %d: %q", len(lines[0]), lines[0])
	}
}

func TestFitter_HonorsMaxLines(t *testing.T) {
	sink := &mocks.Sink{EnabledValue: true}
	fitter := NewFitter(ggrenderer.New(), sink, logger.NewNoop())

	opts := DefaultOptions()
	opts.MaxLines = 2

	text := strings.Repeat("word ", 50)
	if _, err := fitter.Generate(400, text, opts, DefaultTextStyle()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(sink.WrappedTexts) != 1 {
		t.Fatalf("expected wrapped text saved, got %d", len(sink.WrappedTexts))
	}
	if lines := strings.Split(sink.WrappedTexts[0], "\n"); len(lines) != 2 {
		t.Errorf("expected 2 rendered lines, got %d", len(lines))
	}
}

func TestFitter_TextDoesNotFit(t *testing.T) {
	fitter := newTestFitter()

	// 5px of safe width cannot hold even a single 7px glyph.
	_, err := fitter.Generate(105, "hello", DefaultOptions(), DefaultTextStyle())
	if !errors.Is(err, ErrTextDoesNotFit) {
		t.Errorf("expected ErrTextDoesNotFit, got %v", err)
	}
}

func TestFitter_NoDrawableWidth(t *testing.T) {
	fitter := newTestFitter()

	_, err := fitter.Generate(40, "hello", DefaultOptions(), DefaultTextStyle())
	if !errors.Is(err, ErrTextDoesNotFit) {
		t.Errorf("expected ErrTextDoesNotFit, got %v", err)
	}
}

func TestFitter_MeasureErrorPropagates(t *testing.T) {
	backendErr := errors.New("bad font")
	renderer := &mocks.Renderer{
		CreateCanvasFunc: func(width, height int, bg color.Color) ports.Canvas {
			return &mocks.Canvas{
				MeasureMultilineTextFunc: func(text string, style ports.TextStyle) (float64, float64, error) {
					return 0, 0, backendErr
				},
			}
		},
	}
	fitter := NewFitter(renderer, nullsink.New(), logger.NewNoop())

	_, err := fitter.Generate(400, "hello", DefaultOptions(), DefaultTextStyle())
	if !errors.Is(err, backendErr) {
		t.Errorf("expected backend error to propagate, got %v", err)
	}
}
