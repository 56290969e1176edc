// Package main provides the CLI entry point for picfx.
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/picfx/pkg/adapters/filesink"
	"github.com/user/picfx/pkg/adapters/ggrenderer"
	"github.com/user/picfx/pkg/adapters/logger"
	"github.com/user/picfx/pkg/adapters/nullsink"
	"github.com/user/picfx/pkg/adapters/osfilesystem"
	"github.com/user/picfx/pkg/config"
	"github.com/user/picfx/pkg/fade"
	"github.com/user/picfx/pkg/picfx"
	"github.com/user/picfx/pkg/ports"
	"github.com/user/picfx/pkg/textimg"
)

func main() {
	app := &cli.App{
		Name:    "picfx",
		Usage:   l10n.T("Fade compositing and fitted text images"),
		Version: picfx.Version,
		Commands: []*cli.Command{
			fadeCommand(),
			textCommand(),
			ensureCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commonFlags are shared by the image-producing subcommands.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output image file path")},
		&cli.StringFlag{Name: "format", Value: "png", Usage: l10n.T("Output format (png, jpeg)")},
		&cli.IntFlag{Name: "quality", Value: 90, Usage: l10n.T("JPEG quality (1-100)")},
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file")},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Save intermediate artifacts")},
		&cli.StringFlag{Name: "debug-dir", Value: "./debug", Usage: l10n.T("Directory for intermediate artifacts")},
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: l10n.T("Log level (debug, info, warn, error)")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output")},
	}
}

// deps bundles the adapters wired for a single invocation.
type deps struct {
	cfg      config.Config
	renderer ports.Renderer
	fs       ports.FileSystem
	sink     ports.DebugSink
	logger   ports.Logger
}

func wire(c *cli.Context) (deps, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return deps{}, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg = loaded
	}

	renderer := ggrenderer.New()
	fs := osfilesystem.New()

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	var sink ports.DebugSink
	if c.Bool("debug") || cfg.Debug {
		dir := c.String("debug-dir")
		if dir == "" {
			dir = cfg.DebugDir
		}
		sink = filesink.New(dir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	return deps{cfg: cfg, renderer: renderer, fs: fs, sink: sink, logger: log}, nil
}

func fadeCommand() *cli.Command {
	return &cli.Command{
		Name:      "fade",
		Usage:     l10n.T("Fade an image to transparency, blur, or another image"),
		ArgsUsage: "INPUT",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: "transparent", Usage: l10n.T("Fade mode (transparent, blur, transparent-blur, image)")},
			&cli.StringFlag{Name: "bottom", Usage: l10n.T("Bottom image path (mode=image)")},
			&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Fade band height in pixels")},
			&cli.IntFlag{Name: "offset", Usage: l10n.T("Rows before the fade begins")},
			&cli.Float64Flag{Name: "blur-radius", Usage: l10n.T("Gaussian blur radius")},
			&cli.Float64Flag{Name: "blur-sigma", Usage: l10n.T("Gaussian blur sigma")},
			&cli.IntFlag{Name: "blur-height", Usage: l10n.T("Blur fade band height (mode=transparent-blur)")},
			&cli.IntFlag{Name: "blur-offset", Usage: l10n.T("Blur fade band offset (mode=transparent-blur)")},
		}, commonFlags()...),
		Action: runFade,
	}
}

func runFade(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit(l10n.T("INPUT argument is required"), 1)
	}

	d, err := wire(c)
	if err != nil {
		return err
	}

	input, err := loadImage(d, c.Args().Get(0))
	if err != nil {
		return err
	}

	compositor := fade.New(d.renderer, d.sink, d.logger)

	height := pickInt(c, "height", d.cfg.Fade.Height)
	offset := pickInt(c, "offset", d.cfg.Fade.Offset)
	blurRadius := pickFloat(c, "blur-radius", d.cfg.Fade.BlurRadius)
	blurSigma := pickFloat(c, "blur-sigma", d.cfg.Fade.BlurSigma)

	var img image.Image
	switch c.String("mode") {
	case "transparent":
		img, err = compositor.FadeToTransparent(input, height, offset)
	case "blur":
		img, err = compositor.FadeToBlur(input, blurRadius, blurSigma, height, offset)
	case "transparent-blur":
		img, err = compositor.FadeToTransparentBlur(input,
			blurRadius, blurSigma,
			pickInt(c, "blur-height", d.cfg.Fade.Height), pickInt(c, "blur-offset", d.cfg.Fade.Offset),
			height, offset)
	case "image":
		bottomPath := c.String("bottom")
		if bottomPath == "" {
			return cli.Exit(l10n.T("--bottom is required for mode=image"), 1)
		}
		var bottom image.Image
		bottom, err = loadImage(d, bottomPath)
		if err != nil {
			return err
		}
		img, err = compositor.FadeTo(input, bottom, height, offset)
	default:
		return cli.Exit(fmt.Sprintf(l10n.T("unknown fade mode: %s"), c.String("mode")), 1)
	}
	if err != nil {
		return err
	}

	return saveImage(d, c, img)
}

func textCommand() *cli.Command {
	return &cli.Command{
		Name:      "text",
		Usage:     l10n.T("Render auto-wrapped text onto a generated canvas"),
		ArgsUsage: "TEXT",
		Flags: append([]cli.Flag{
			&cli.IntFlag{Name: "width", Aliases: []string{"w"}, Value: 400, Usage: l10n.T("Canvas width in pixels")},
			&cli.StringFlag{Name: "background", Usage: l10n.T("Background color (hex, e.g., #ffffff)")},
			&cli.StringFlag{Name: "fill", Usage: l10n.T("Text color (hex, e.g., #000000)")},
			&cli.StringFlag{Name: "font", Usage: l10n.T("Path to a TrueType font")},
			&cli.Float64Flag{Name: "font-size", Usage: l10n.T("Font size in points")},
			&cli.IntFlag{Name: "hpadding", Usage: l10n.T("Horizontal padding in pixels")},
			&cli.IntFlag{Name: "vpadding", Usage: l10n.T("Vertical padding in pixels")},
			&cli.IntFlag{Name: "max-lines", Usage: l10n.T("Maximum rendered lines (0 = unlimited)")},
		}, commonFlags()...),
		Action: runText,
	}
}

func runText(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit(l10n.T("TEXT argument is required"), 1)
	}

	d, err := wire(c)
	if err != nil {
		return err
	}

	opts := textimg.DefaultOptions()
	opts.BackgroundColor = config.ParseColor(pick(c.String("background"), d.cfg.Text.BackgroundColor))
	opts.Format = ports.ParseImageFormat(c.String("format"))
	opts.HorizontalPadding = pickInt(c, "hpadding", d.cfg.Text.HorizontalPadding)
	opts.VerticalPadding = pickInt(c, "vpadding", d.cfg.Text.VerticalPadding)
	opts.MaxLines = pickInt(c, "max-lines", d.cfg.Text.MaxLines)

	style := textimg.DefaultTextStyle()
	style.Color = config.ParseColor(pick(c.String("fill"), d.cfg.Text.FillColor))
	style.FontPath = ggrenderer.ResolveFontPath(pick(c.String("font"), d.cfg.Text.FontPath))
	if size := c.Float64("font-size"); size > 0 {
		style.FontSize = size
	} else if d.cfg.Text.FontSize > 0 {
		style.FontSize = d.cfg.Text.FontSize
	}

	fitter := textimg.NewFitter(d.renderer, d.sink, d.logger)
	img, err := fitter.Generate(c.Int("width"), c.Args().Get(0), opts, style)
	if err != nil {
		return err
	}

	return saveImage(d, c, img)
}

func ensureCommand() *cli.Command {
	return &cli.Command{
		Name:  "ensure",
		Usage: l10n.T("Verify the imaging backend can render text"),
		Action: func(c *cli.Context) error {
			if err := picfx.Ensure(); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Println(l10n.T("Text rendering is available"))
			return nil
		},
	}
}

func loadImage(d deps, path string) (image.Image, error) {
	data, err := d.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	img, err := d.renderer.DecodeImage(data, ports.FormatAuto)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func saveImage(d deps, c *cli.Context, img image.Image) error {
	format := ports.ParseImageFormat(c.String("format"))
	data, err := d.renderer.EncodeImage(img, format, c.Int("quality"))
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	path := c.String("output")
	if err := d.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	d.logger.Info("Output saved to %s", path)
	return nil
}

// pick returns the flag value when set, otherwise the config fallback.
func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

func pickInt(c *cli.Context, name string, fallback int) int {
	if c.IsSet(name) {
		return c.Int(name)
	}
	return fallback
}

func pickFloat(c *cli.Context, name string, fallback float64) float64 {
	if c.IsSet(name) {
		return c.Float64(name)
	}
	return fallback
}
