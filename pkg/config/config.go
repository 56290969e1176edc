// Package config provides configuration loading and management.
package config

import (
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for picfx.
type Config struct {
	// Fade
	Fade FadeConfig `yaml:"fade"`

	// Text image
	Text TextConfig `yaml:"text"`

	// Output
	Format  string `yaml:"format"`
	Quality int    `yaml:"quality"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// FadeConfig holds default fade-composite parameters.
type FadeConfig struct {
	Height     int     `yaml:"height"`
	Offset     int     `yaml:"offset"`
	BlurRadius float64 `yaml:"blur_radius"`
	BlurSigma  float64 `yaml:"blur_sigma"`
}

// TextConfig holds default text-image parameters.
type TextConfig struct {
	BackgroundColor   string  `yaml:"background_color"`
	FillColor         string  `yaml:"fill_color"`
	FontPath          string  `yaml:"font"`
	FontSize          float64 `yaml:"font_size"`
	HorizontalPadding int     `yaml:"horizontal_padding"`
	VerticalPadding   int     `yaml:"vertical_padding"`
	MaxLines          int     `yaml:"max_lines"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Fade: FadeConfig{
			Height:     40,
			Offset:     0,
			BlurRadius: 8,
			BlurSigma:  4,
		},
		Text: TextConfig{
			BackgroundColor:   "#FFFFFF",
			FillColor:         "#000000",
			FontSize:          14,
			HorizontalPadding: 50,
			VerticalPadding:   20,
			MaxLines:          10,
		},
		Format:  "png",
		Quality: 90,

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file, layering it over
// the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return color.Black
	}

	var r, g, b uint8
	for i, c := range []byte{hex[0], hex[1]} {
		v := hexValue(c)
		if i == 0 {
			r = v << 4
		} else {
			r |= v
		}
	}
	for i, c := range []byte{hex[2], hex[3]} {
		v := hexValue(c)
		if i == 0 {
			g = v << 4
		} else {
			g |= v
		}
	}
	for i, c := range []byte{hex[4], hex[5]} {
		v := hexValue(c)
		if i == 0 {
			b = v << 4
		} else {
			b |= v
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
