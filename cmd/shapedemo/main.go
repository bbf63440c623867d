// Command shapedemo draws one of every shape variant into a PNG and prints
// each shape's diagnostic line.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/gogpu/shape"
	"github.com/gogpu/shape/raster"
	"github.com/gogpu/shape/scene"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "shapedemo:", err)
		os.Exit(1)
	}
}

type config struct {
	width, height int
	output        string
	background    string
	borderColor   string
	borderWidth   int
	selected      int
	trace         string
	verbose       bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := pflag.NewFlagSet("shapedemo", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.width, "width", 640, "image width")
	fs.IntVar(&cfg.height, "height", 480, "image height")
	fs.StringVarP(&cfg.output, "output", "o", "shapes.png", "output PNG file")
	fs.StringVar(&cfg.background, "background", "white", "background color (CSS name or hex)")
	fs.StringVar(&cfg.borderColor, "border-color", "", "outline color of the selected shape (default: the shape's color, darkened)")
	fs.IntVar(&cfg.borderWidth, "border-width", scene.DefaultBorderWidth, "outline width of the selected shape")
	fs.IntVarP(&cfg.selected, "select", "s", -1, "index of the shape to outline (-1 for none)")
	fs.StringVarP(&cfg.trace, "trace", "t", "", "trace categories: c=construct, d=draw, @=all")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log at debug level")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.selected < -1 {
		return config{}, fmt.Errorf("invalid --select %d: must be -1 or a shape index", cfg.selected)
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if cfg.verbose || cfg.trace != "" {
		shape.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer shape.SetLogger(nil)
	}
	shape.SetTraceFlags(cfg.trace)
	defer shape.SetTraceFlags("")

	bg, err := shape.ParseColor(cfg.background)
	if err != nil {
		return err
	}
	borderOpt := scene.WithBorderWidth(cfg.borderWidth)
	if cfg.borderColor != "" {
		border, err := shape.ParseColor(cfg.borderColor)
		if err != nil {
			return err
		}
		borderOpt = scene.WithBorder(border, cfg.borderWidth)
	}

	sc := buildScene(cfg, borderOpt)
	if cfg.selected >= 0 {
		if err := sc.Select(cfg.selected); err != nil {
			return err
		}
	}
	if _, err := sc.WriteTo(stdout); err != nil {
		return err
	}

	canvas := raster.New(cfg.width, cfg.height, raster.WithBackground(bg))
	sc.Draw(canvas)
	if err := canvas.SavePNG(cfg.output); err != nil {
		return err
	}
	shape.Logger().Info("saved", slog.String("output", cfg.output), slog.Int("width", cfg.width), slog.Int("height", cfg.height))
	return nil
}
