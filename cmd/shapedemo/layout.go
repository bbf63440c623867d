package main

import (
	"log/slog"

	"github.com/gogpu/shape"
	"github.com/gogpu/shape/raster"
	"github.com/gogpu/shape/scene"
)

// exhibit is one cell of the demo grid.
type exhibit struct {
	name  string
	shape shape.Shape
	color shape.Color
}

func exhibits() []exhibit {
	return []exhibit{
		{"ellipse", shape.NewEllipse(60, 35), shape.RGB(0x1f, 0x77, 0xb4)},
		{"circle", shape.NewCircle(45), shape.RGB(0xff, 0x7f, 0x0e)},
		{"polygon", shape.NewPolygon([]shape.Point{
			{X: -50, Y: -30}, {X: 0, Y: 45}, {X: 50, Y: -30}, {X: 0, Y: -5},
		}), shape.RGB(0x2c, 0xa0, 0x2c)},
		{"rectangle", shape.NewRectangle(110, 60), shape.RGB(0xd6, 0x27, 0x28)},
		{"square", shape.NewSquare(80), shape.RGB(0x94, 0x67, 0xbd)},
		{"diamond", shape.NewDiamond(110, 80), shape.RGB(0x8c, 0x56, 0x4b)},
		{"equilateral", shape.NewEquilateral(100), shape.RGB(0xe3, 0x77, 0xc2)},
		{"text", shape.NewText(shape.TimesRoman24, "Shapes"), shape.Black},
	}
}

const (
	columns     = 4
	captionFont = shape.Helvetica12
	captionGap  = 10
)

// buildScene lays the exhibits out on a grid and puts a centered caption
// under each one.
func buildScene(cfg config, opts ...scene.Option) *scene.Scene {
	sc := scene.New(opts...)
	items := exhibits()
	rows := (len(items) + columns - 1) / columns
	cellW := float64(cfg.width) / columns
	cellH := float64(cfg.height) / float64(rows)

	for i, ex := range items {
		col, row := i%columns, i/columns
		center := shape.Pt(
			cellW*(float64(col)+0.5),
			float64(cfg.height)-cellH*(float64(row)+0.5),
		)
		if t, ok := ex.shape.(*shape.Text); ok {
			center.X -= textWidth(t.Font(), t.Data()) / 2
		}
		sc.Add(ex.shape, center, ex.color)
	}
	for i, ex := range items {
		obj := sc.Objects()[i]
		pos := shape.Pt(
			cellW*(float64(i%columns)+0.5)-textWidth(captionFont, ex.name)/2,
			obj.Center.Y-cellH/2+captionGap,
		)
		sc.Add(shape.NewText(captionFont, ex.name), pos, shape.RGB(0x33, 0x33, 0x33))
	}
	return sc
}

func textWidth(font shape.FontID, s string) float64 {
	w, err := raster.MeasureText(font, s)
	if err != nil {
		shape.Logger().Warn("measure text", slog.String("text", s), slog.String("error", err.Error()))
		return 0
	}
	return w
}
