package mocks

import (
	"image"

	"github.com/user/picfx/pkg/ports"
)

// Sink is a mock implementation of ports.DebugSink that records what
// was saved.
type Sink struct {
	EnabledValue bool

	GradientMasks []image.Image
	Blurred       []image.Image
	WrappedTexts  []string
	FittedImages  []image.Image

	SaveErr error
}

func (m *Sink) Enabled() bool {
	return m.EnabledValue
}

func (m *Sink) SaveGradientMask(img image.Image) error {
	m.GradientMasks = append(m.GradientMasks, img)
	return m.SaveErr
}

func (m *Sink) SaveBlurred(img image.Image) error {
	m.Blurred = append(m.Blurred, img)
	return m.SaveErr
}

func (m *Sink) SaveWrappedText(text string) error {
	m.WrappedTexts = append(m.WrappedTexts, text)
	return m.SaveErr
}

func (m *Sink) SaveFittedImage(img image.Image) error {
	m.FittedImages = append(m.FittedImages, img)
	return m.SaveErr
}

var _ ports.DebugSink = (*Sink)(nil)
