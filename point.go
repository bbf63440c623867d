package shape

import "strconv"

// Point represents a 2D point or offset.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Offset returns p moved by d in both coordinates.
func (p Point) Offset(d float64) Point {
	return Point{X: p.X + d, Y: p.Y + d}
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return string(p.appendTo(make([]byte, 0, 24)))
}

func (p Point) appendTo(b []byte) []byte {
	b = append(b, '(')
	b = strconv.AppendFloat(b, p.X, 'g', -1, 64)
	b = append(b, ',')
	b = strconv.AppendFloat(b, p.Y, 'g', -1, 64)
	return append(b, ')')
}
