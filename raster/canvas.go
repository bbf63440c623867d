package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/shape"
)

// Canvas is a software shape.Rasterizer that paints into an RGBA image.
// Polygons are scan-converted with anti-aliasing; text is drawn with the
// Go font family at the pixel size of each bitmap font.
//
// Canvas is safe for concurrent use; calls are serialized.
type Canvas struct {
	mu    sync.Mutex
	img   *image.RGBA
	opts  options
	rast  vector.Rasterizer
	path  [][2]float32
	faces map[shape.FontID]font.Face
}

var _ shape.Rasterizer = (*Canvas)(nil)

// New creates a canvas of the given size cleared to the background color.
func New(width, height int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		opts:  o,
		faces: make(map[shape.FontID]font.Face),
	}
	c.clear()
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image returns the backing image. The caller must not draw into it
// while other goroutines use the canvas.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clear()
}

func (c *Canvas) clear() {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(c.opts.background), image.Point{}, draw.Src)
}

// FillPolygon implements shape.Rasterizer. An empty point list paints
// nothing. A polygon with a NaN or infinite coordinate, including one
// that overflows float32, is skipped with a warning.
func (c *Canvas) FillPolygon(points []shape.Point, col shape.Color) {
	if len(points) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.path = c.path[:0]
	for i, pt := range points {
		p := c.device(pt)
		x, y := float32(p.X), float32(p.Y)
		if !finite(x) || !finite(y) {
			shape.Logger().Warn("raster: polygon skipped", slog.Int("vertex", i), slog.Any("point", pt))
			return
		}
		c.path = append(c.path, [2]float32{x, y})
	}

	b := c.img.Rect
	c.rast.Reset(b.Dx(), b.Dy())
	c.rast.DrawOp = draw.Over
	c.rast.MoveTo(c.path[0][0], c.path[0][1])
	for _, p := range c.path[1:] {
		c.rast.LineTo(p[0], p[1])
	}
	c.rast.ClosePath()
	c.rast.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// DrawText implements shape.Rasterizer. Text in an unsupported font is
// skipped with a warning.
func (c *Canvas) DrawText(pos shape.Point, col shape.Color, id shape.FontID, s string) {
	if s == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	face, err := c.face(id)
	if err != nil {
		shape.Logger().Warn("raster: text skipped", slog.Any("font", id), slog.String("error", err.Error()))
		return
	}
	p := c.device(pos)
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)},
	}
	d.DrawString(norm.NFC.String(s))
}

// face returns the cached face for id. Callers hold c.mu.
func (c *Canvas) face(id shape.FontID) (font.Face, error) {
	if f, ok := c.faces[id]; ok {
		return f, nil
	}
	f, err := newFace(id)
	if err != nil {
		return nil, err
	}
	c.faces[id] = f
	return f, nil
}

// device converts a canvas coordinate to image space.
func (c *Canvas) device(p shape.Point) shape.Point {
	if c.opts.yUp {
		p.Y = float64(c.img.Rect.Dy()) - p.Y
	}
	return p
}

// EncodePNG writes the canvas as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
