// Package raster provides a software shape.Rasterizer.
//
// A Canvas scan-converts polygons into an *image.RGBA with
// golang.org/x/image/vector and draws text with the embedded Go fonts,
// substituting each bitmap font with a scalable face of the same pixel
// size:
//
//	Fixed-8x13, Fixed-9x15         Go Mono 13px, 15px
//	Helvetica-10, -12, -18         Go Regular 10px, 12px, 18px
//	Times-Roman-10, -24            Go Medium 10px, 24px
//
// MeasureText shapes a string with go-text/typesetting and reports its
// advance width, which callers use to center labels.
package raster
