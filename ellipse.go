package shape

import (
	"log/slog"
	"math"
)

// ellipseSegments is the number of points sampled around an ellipse.
const ellipseSegments = 32

// Ellipse is an axis-aligned ellipse approximated by a 32-point polygon.
type Ellipse struct {
	kind      string
	dimension Point
}

// NewEllipse creates an ellipse. The width and height are used directly
// as the x and y radii of the parametric equation.
func NewEllipse(width, height float64) *Ellipse {
	e := &Ellipse{kind: "Ellipse", dimension: Pt(width, height)}
	Trace(TraceConstruct, "construct", slog.String("kind", e.kind), slog.Any("dimension", e.dimension))
	return e
}

// Dimension returns the radius pair.
func (e *Ellipse) Dimension() Point { return e.dimension }

// Draw implements Shape. In line mode both radii grow by lineWidth; the
// result is still submitted as a filled region.
func (e *Ellipse) Draw(r Rasterizer, center Point, c Color, lineMode bool, lineWidth int) {
	Trace(TraceDraw, "draw", slog.String("kind", e.kind), slog.Any("center", center), slog.Any("color", c))
	r.FillPolygon(e.points(center, lineMode, lineWidth), c)
}

// points returns the sampled outline translated to center.
func (e *Ellipse) points(center Point, lineMode bool, lineWidth int) []Point {
	radius := e.dimension
	if lineMode {
		radius = radius.Offset(float64(lineWidth))
	}
	const delta = 2 * math.Pi / ellipseSegments
	pts := make([]Point, ellipseSegments)
	for i := range pts {
		theta := float64(i) * delta
		pts[i] = Point{
			X: radius.X*math.Cos(theta) + center.X,
			Y: radius.Y*math.Sin(theta) + center.Y,
		}
	}
	return pts
}

// Describe implements Shape.
func (e *Ellipse) Describe() string {
	return describe(e, e.kind, "{"+e.dimension.String()+"}")
}

func (e *Ellipse) String() string { return e.Describe() }

// Circle is an Ellipse with equal radii.
type Circle struct {
	Ellipse
}

// NewCircle creates a circle; diameter is used for both radii.
func NewCircle(diameter float64) *Circle {
	c := &Circle{Ellipse{kind: "Circle", dimension: Pt(diameter, diameter)}}
	Trace(TraceConstruct, "construct", slog.String("kind", c.kind), slog.Float64("diameter", diameter))
	return c
}
