// Package shape provides polymorphic 2D shapes that render themselves
// through a small Rasterizer interface.
//
// # Overview
//
// Every shape implements [Shape]: Draw paints it at a center point in a
// color, either as a plain fill or in line mode, and Describe returns a
// one-line diagnostic. Shapes are built once and drawn many times at
// different positions; they are immutable after construction.
//
// The variants are:
//   - [Text]: a string in one of the bitmap fonts ([FontID])
//   - [Ellipse] and [Circle]: a 32-point polygon approximation
//   - [Polygon]: arbitrary local vertices
//   - [Rectangle], [Square], [Diamond], [Equilateral]: polygons whose
//     vertices are derived from their dimensions
//
// # Line mode
//
// Line mode does not stroke. Ellipses grow both radii by the line width
// and polygons shift every vertex by the line width in both axes; the
// result is still filled. Drawing the inflated shape in a border color
// and then the plain shape on top yields an outline, which is how the
// scene package highlights the selected object.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/shape"
//	    "github.com/gogpu/shape/raster"
//	)
//
//	canvas := raster.New(640, 480)
//	rect := shape.NewRectangle(120, 80)
//	rect.Draw(canvas, shape.Pt(320, 240), shape.Red, false, 0)
//	fmt.Println(rect.Describe())
//	_ = canvas.SavePNG("out.png")
//
// # Logging
//
// The package is silent by default. Install a logger with [SetLogger] and
// enable trace categories with [SetTraceFlags] ("c" for construction,
// "d" for draw calls, "@" for everything).
package shape
