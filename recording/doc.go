// Package recording provides a shape.Rasterizer that captures drawing
// calls instead of painting them.
//
// Each FillPolygon and DrawText call is stored as a typed command
// struct, which makes recorded output easy to inspect in tests and lets
// a drawing be replayed into any other Rasterizer later.
//
// # Example
//
//	rec := recording.NewRecorder()
//	shape.NewRectangle(10, 20).Draw(rec, shape.Pt(0, 0), shape.Red, false, 0)
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd)
//	}
//	rec.Playback(canvas)
package recording
