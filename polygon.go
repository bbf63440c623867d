package shape

import (
	"log/slog"
	"math"
	"slices"
)

// Polygon is an ordered list of vertices relative to the shape's own
// origin. Vertex order is the winding order and is preserved exactly.
type Polygon struct {
	kind     string
	vertices []Point
}

// NewPolygon creates a polygon from local vertices. The slice is copied.
// Fewer than three vertices are accepted and draw as degenerate geometry.
func NewPolygon(vertices []Point) *Polygon {
	p := newPolygon("Polygon", slices.Clone(vertices))
	Trace(TraceConstruct, "construct", slog.String("kind", p.kind), slog.Int("vertices", len(vertices)))
	return &p
}

func newPolygon(kind string, vertices []Point) Polygon {
	return Polygon{kind: kind, vertices: vertices}
}

// Vertices returns a copy of the local vertices.
func (p *Polygon) Vertices() []Point {
	return slices.Clone(p.vertices)
}

// Draw implements Shape. In line mode every vertex is shifted by
// +lineWidth in both axes before translation to center.
func (p *Polygon) Draw(r Rasterizer, center Point, c Color, lineMode bool, lineWidth int) {
	Trace(TraceDraw, "draw", slog.String("kind", p.kind), slog.Any("center", center), slog.Any("color", c))
	r.FillPolygon(p.points(center, lineMode, lineWidth), c)
}

func (p *Polygon) points(center Point, lineMode bool, lineWidth int) []Point {
	pts := make([]Point, len(p.vertices))
	for i, v := range p.vertices {
		if lineMode {
			v = v.Offset(float64(lineWidth))
		}
		pts[i] = v.Add(center)
	}
	return pts
}

// Describe implements Shape.
func (p *Polygon) Describe() string {
	b := make([]byte, 0, 2+len(p.vertices)*16)
	b = append(b, '{')
	for i, v := range p.vertices {
		if i > 0 {
			b = append(b, ' ')
		}
		b = v.appendTo(b)
	}
	b = append(b, '}')
	return describe(p, p.kind, string(b))
}

func (p *Polygon) String() string { return p.Describe() }

// Rectangle is an axis-aligned rectangle centered on its origin.
type Rectangle struct {
	Polygon
}

// NewRectangle creates a rectangle. Corners are listed top-left,
// top-right, bottom-right, bottom-left.
func NewRectangle(width, height float64) *Rectangle {
	r := &Rectangle{rectangle("Rectangle", width, height)}
	Trace(TraceConstruct, "construct", slog.String("kind", r.kind), slog.Float64("width", width), slog.Float64("height", height))
	return r
}

func rectangle(kind string, width, height float64) Polygon {
	return newPolygon(kind, []Point{
		{-width / 2, height / 2},
		{width / 2, height / 2},
		{width / 2, -height / 2},
		{-width / 2, -height / 2},
	})
}

// Square is a Rectangle with equal sides.
type Square struct {
	Rectangle
}

// NewSquare creates a square with the given side length.
func NewSquare(width float64) *Square {
	s := &Square{Rectangle{rectangle("Square", width, width)}}
	Trace(TraceConstruct, "construct", slog.String("kind", s.kind), slog.Float64("width", width))
	return s
}

// Diamond is a rectangle rotated by 45 degrees: its vertices are the
// axis midpoints of the bounding box.
type Diamond struct {
	Polygon
}

// NewDiamond creates a diamond. Vertices are listed top, right, bottom,
// left.
func NewDiamond(width, height float64) *Diamond {
	d := &Diamond{newPolygon("Diamond", []Point{
		{0, height / 2},
		{width / 2, 0},
		{0, -height / 2},
		{-width / 2, 0},
	})}
	Trace(TraceConstruct, "construct", slog.String("kind", d.kind), slog.Float64("width", width), slog.Float64("height", height))
	return d
}

// Equilateral is an equilateral triangle with its apex up.
type Equilateral struct {
	Polygon
}

// NewEquilateral creates a triangle with the given side length. The apex
// sits at half the triangle height above the origin and the base the
// same distance below it.
func NewEquilateral(width float64) *Equilateral {
	h := (width * math.Sqrt(3) * 0.5) / 2
	e := &Equilateral{newPolygon("Equilateral", []Point{
		{0, h},
		{width / 2, -h},
		{-width / 2, -h},
	})}
	Trace(TraceConstruct, "construct", slog.String("kind", e.kind), slog.Float64("width", width))
	return e
}
