// Package fade implements gradient-mask fade compositing.
package fade

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/user/picfx/pkg/ports"
)

// Compositor composes images through linear opacity gradient masks.
// It holds no image state; every call operates on clones of its inputs
// and returns a new image.
type Compositor struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// New creates a new Compositor.
func New(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Compositor {
	return &Compositor{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("fade"),
	}
}

// FadeTo composes top over bottom through a vertical opacity gradient.
// The result is sized to bottom's geometry. Rows above fadeOffset show
// top fully opaque; across the next fadeHeight rows top's opacity falls
// linearly from 1.0 to 0.0; below the band only bottom remains.
// Negative fade geometry clamps to zero. Neither input is modified.
func (c *Compositor) FadeTo(top, bottom image.Image, fadeHeight, fadeOffset int) (*image.NRGBA, error) {
	if fadeHeight < 0 {
		fadeHeight = 0
	}
	if fadeOffset < 0 {
		fadeOffset = 0
	}

	bounds := bottom.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	c.logger.Debug("Compositing %dpx fade band at offset %d onto %dx%d", fadeHeight, fadeOffset, width, height)

	mask, err := c.gradientMask(width, height, fadeHeight, fadeOffset)
	if err != nil {
		return nil, err
	}

	out := c.renderer.CloneImage(bottom)
	topCopy := c.renderer.CloneImage(top)
	draw.DrawMask(out, out.Bounds(), topCopy, image.Point{}, mask, image.Point{}, draw.Over)

	return out, nil
}

// FadeToTransparent fades img into full transparency over the given band.
func (c *Compositor) FadeToTransparent(img image.Image, fadeHeight, fadeOffset int) (*image.NRGBA, error) {
	bounds := img.Bounds()
	empty := c.renderer.CreateCanvas(bounds.Dx(), bounds.Dy(), color.Transparent).ToImage()
	return c.FadeTo(img, empty, fadeHeight, fadeOffset)
}

// FadeToBlur fades img into a gaussian-blurred copy of itself.
func (c *Compositor) FadeToBlur(img image.Image, blurRadius, blurSigma float64, fadeHeight, fadeOffset int) (*image.NRGBA, error) {
	c.logger.Debug("Blurring %dx%d copy (radius %.1f, sigma %.1f)", img.Bounds().Dx(), img.Bounds().Dy(), blurRadius, blurSigma)

	blurred := c.renderer.BlurImage(img, blurRadius, blurSigma)
	if c.sink.Enabled() {
		if err := c.sink.SaveBlurred(blurred); err != nil {
			c.logger.Warn("Failed to save blurred intermediate: %s", err)
		}
	}

	return c.FadeTo(img, blurred, fadeHeight, fadeOffset)
}

// FadeToTransparentBlur fades img into a blurred copy of itself, then
// fades that result into transparency. The two fade bands are applied
// sequentially, not blended.
func (c *Compositor) FadeToTransparentBlur(img image.Image, blurRadius, blurSigma float64, blurFadeHeight, blurFadeOffset, transparentFadeHeight, transparentFadeOffset int) (*image.NRGBA, error) {
	blurred, err := c.FadeToBlur(img, blurRadius, blurSigma, blurFadeHeight, blurFadeOffset)
	if err != nil {
		return nil, fmt.Errorf("fade to blur: %w", err)
	}
	return c.FadeToTransparent(blurred, transparentFadeHeight, transparentFadeOffset)
}

// gradientMask builds the alpha mask for a fade: fully opaque above the
// offset, a black-to-transparent linear gradient across the band, and
// transparent below. The mask always matches the composite region's
// pixel dimensions.
func (c *Compositor) gradientMask(width, height, fadeHeight, fadeOffset int) (*image.Alpha, error) {
	canvas := c.renderer.CreateCanvas(width, height, color.Transparent)

	if fadeOffset > 0 {
		canvas.DrawRect(0, 0, width, fadeOffset, color.Black)
	}
	if fadeHeight > 0 {
		canvas.FillLinearGradient(
			0, fadeOffset, width, fadeHeight,
			color.NRGBA{A: 255},
			color.NRGBA{},
		)
	}

	img := canvas.ToImage()
	if c.sink.Enabled() {
		if err := c.sink.SaveGradientMask(img); err != nil {
			c.logger.Warn("Failed to save gradient mask: %s", err)
		}
	}

	bounds := img.Bounds()
	mask := image.NewAlpha(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(mask, mask.Bounds(), img, bounds.Min, draw.Src)
	return mask, nil
}
