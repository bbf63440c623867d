package shape

import (
	"log/slog"
	"strconv"
)

// Text is a string label rendered with one of the bitmap fonts.
// Text has no outline variant: Draw ignores line mode.
type Text struct {
	font FontID
	data string
}

// NewText creates a text label. Unsupported fonts are accepted; they
// describe with an empty font name and render however the Rasterizer
// treats unknown fonts.
func NewText(font FontID, data string) *Text {
	t := &Text{font: font, data: data}
	Trace(TraceConstruct, "construct", slog.String("kind", "Text"), slog.String("font", font.Name()), slog.String("data", data))
	return t
}

// Font returns the font the label is drawn with.
func (t *Text) Font() FontID { return t.font }

// Data returns the label text.
func (t *Text) Data() string { return t.data }

// Draw implements Shape. lineMode and lineWidth are ignored.
func (t *Text) Draw(r Rasterizer, center Point, c Color, lineMode bool, lineWidth int) {
	Trace(TraceDraw, "draw", slog.String("kind", "Text"), slog.Any("center", center), slog.Any("color", c))
	r.DrawText(center, c, t.font, t.data)
}

// Describe implements Shape.
func (t *Text) Describe() string {
	return describe(t, "Text", strconv.Itoa(int(t.font))+"("+t.font.Name()+`) "`+t.data+`"`)
}

func (t *Text) String() string { return t.Describe() }
