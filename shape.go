package shape

import (
	"fmt"
	"strings"
)

// Shape is a drawable, describable geometric entity. Shapes are immutable
// after construction, so Draw and Describe may be called concurrently as
// long as the Rasterizer tolerates it.
type Shape interface {
	// Draw renders the shape centered at center. In line mode the shape
	// is inflated by lineWidth instead of being filled as-is; see the
	// individual variants for the exact policy.
	Draw(r Rasterizer, center Point, c Color, lineMode bool, lineWidth int)

	// Describe returns a one-line diagnostic: the instance identity, the
	// variant name and variant-specific detail.
	Describe() string
}

// Rasterizer paints point sequences and glyph text. Implementations live
// in the raster and recording packages.
type Rasterizer interface {
	// FillPolygon paints the region bounded by points in the given color.
	// The slice must not be retained after the call returns.
	FillPolygon(points []Point, c Color)

	// DrawText paints s with its baseline origin at pos.
	DrawText(pos Point, c Color, font FontID, s string)
}

// describe builds the common "<identity>-><kind>: " prefix followed by
// detail. self is the address of the shape value.
func describe(self any, kind, detail string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%p->%s: ", self, kind)
	b.WriteString(detail)
	return b.String()
}

var (
	_ Shape = (*Text)(nil)
	_ Shape = (*Ellipse)(nil)
	_ Shape = (*Circle)(nil)
	_ Shape = (*Polygon)(nil)
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Square)(nil)
	_ Shape = (*Diamond)(nil)
	_ Shape = (*Equilateral)(nil)
)
