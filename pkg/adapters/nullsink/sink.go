// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/picfx/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveGradientMask does nothing.
func (s *Sink) SaveGradientMask(img image.Image) error {
	return nil
}

// SaveBlurred does nothing.
func (s *Sink) SaveBlurred(img image.Image) error {
	return nil
}

// SaveWrappedText does nothing.
func (s *Sink) SaveWrappedText(text string) error {
	return nil
}

// SaveFittedImage does nothing.
func (s *Sink) SaveFittedImage(img image.Image) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
