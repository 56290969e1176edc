// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/picfx/pkg/ports"
)

// Sink saves debug output to files under a base directory.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveGradientMask saves the gradient mask built for a fade composite.
func (s *Sink) SaveGradientMask(img image.Image) error {
	return s.saveImage("gradient-mask.png", img)
}

// SaveBlurred saves the blurred intermediate of a fade-to-blur composite.
func (s *Sink) SaveBlurred(img image.Image) error {
	return s.saveImage("blurred.png", img)
}

// SaveWrappedText saves the fitted, wrapped text of a text-image render.
func (s *Sink) SaveWrappedText(text string) error {
	path := filepath.Join(s.baseDir, "wrapped.txt")
	return s.fs.WriteFile(path, []byte(text))
}

// SaveFittedImage saves the final rendered text image.
func (s *Sink) SaveFittedImage(img image.Image) error {
	return s.saveImage("text-image.png", img)
}

func (s *Sink) saveImage(name string, img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, name), data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
