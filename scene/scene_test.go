package scene

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/shape"
	"github.com/gogpu/shape/recording"
)

func TestSceneDrawOrder(t *testing.T) {
	sc := New()
	sc.Add(shape.NewSquare(2), shape.Pt(0, 0), shape.Red)
	sc.Add(shape.NewText(shape.Fixed8x13, "a"), shape.Pt(5, 5), shape.Blue)

	rec := recording.NewRecorder()
	sc.Draw(rec)

	want := []recording.Command{
		recording.FillPolygonCommand{
			Points: []shape.Point{{X: -1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1}},
			Color:  shape.Red,
		},
		recording.DrawTextCommand{Pos: shape.Pt(5, 5), Color: shape.Blue, Font: shape.Fixed8x13, Text: "a"},
	}
	if diff := cmp.Diff(want, rec.Commands()); diff != "" {
		t.Errorf("draw mismatch (-want +got):\n%s", diff)
	}
}

func TestSceneSelectedOutline(t *testing.T) {
	sc := New(WithBorder(shape.Yellow, 3))
	sc.Add(shape.NewSquare(2), shape.Pt(10, 10), shape.Red)
	if err := sc.Select(0); err != nil {
		t.Fatalf("Select: %v", err)
	}

	rec := recording.NewRecorder()
	sc.Draw(rec)

	want := []recording.Command{
		recording.FillPolygonCommand{
			Points: []shape.Point{{X: 12, Y: 14}, {X: 14, Y: 14}, {X: 14, Y: 12}, {X: 12, Y: 12}},
			Color:  shape.Yellow,
		},
		recording.FillPolygonCommand{
			Points: []shape.Point{{X: 9, Y: 11}, {X: 11, Y: 11}, {X: 11, Y: 9}, {X: 9, Y: 9}},
			Color:  shape.Red,
		},
	}
	if diff := cmp.Diff(want, rec.Commands()); diff != "" {
		t.Errorf("draw mismatch (-want +got):\n%s", diff)
	}
}

func TestSceneDefaultBorderDarkens(t *testing.T) {
	sc := New()
	c := shape.RGB(200, 120, 40)
	sc.Add(shape.NewCircle(5), shape.Pt(0, 0), c)
	_ = sc.Select(0)

	rec := recording.NewRecorder()
	sc.Draw(rec)

	cmds := rec.Commands()
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	border := cmds[0].(recording.FillPolygonCommand)
	if border.Color != c.Darken(defaultDarken) {
		t.Errorf("border color = %v, want %v", border.Color, c.Darken(defaultDarken))
	}
	// Default width inflates the radius from 5 to 9.
	if got := border.Points[0]; got != shape.Pt(5+DefaultBorderWidth, 0) {
		t.Errorf("border first point = %v", got)
	}
}

func TestSceneBorderWidthKeepsDefaultColor(t *testing.T) {
	sc := New(WithBorderWidth(7))
	c := shape.RGB(40, 160, 90)
	sc.Add(shape.NewSquare(2), shape.Pt(0, 0), c)
	_ = sc.Select(0)

	rec := recording.NewRecorder()
	sc.Draw(rec)

	border := rec.Commands()[0].(recording.FillPolygonCommand)
	if border.Color != c.Darken(defaultDarken) {
		t.Errorf("border color = %v, want %v", border.Color, c.Darken(defaultDarken))
	}
	if got := border.Points[0]; got != shape.Pt(6, 8) {
		t.Errorf("border first point = %v, want (6,8)", got)
	}
}

func TestSceneSelect(t *testing.T) {
	sc := New()
	if _, ok := sc.Selected(); ok {
		t.Error("new scene has a selection")
	}
	if err := sc.Select(0); !errors.Is(err, ErrNoObject) {
		t.Errorf("Select(0) on empty scene = %v, want ErrNoObject", err)
	}
	obj := sc.Add(shape.NewCircle(1), shape.Pt(0, 0), shape.Black)
	if err := sc.Select(-1); !errors.Is(err, ErrNoObject) {
		t.Errorf("Select(-1) = %v, want ErrNoObject", err)
	}
	if err := sc.Select(0); err != nil {
		t.Fatalf("Select(0): %v", err)
	}
	if got, ok := sc.Selected(); !ok || got != obj {
		t.Errorf("Selected() = %v, %v", got, ok)
	}
	sc.Deselect()
	if _, ok := sc.Selected(); ok {
		t.Error("Deselect left a selection")
	}
}

func TestSceneMoveSelected(t *testing.T) {
	sc := New()
	obj := sc.Add(shape.NewDiamond(2, 2), shape.Pt(1, 1), shape.Black)
	if sc.MoveSelected(shape.Pt(5, 5)) {
		t.Error("MoveSelected with no selection reported true")
	}
	_ = sc.Select(0)
	if !sc.MoveSelected(shape.Pt(4, -2)) {
		t.Error("MoveSelected reported false")
	}
	if obj.Center != shape.Pt(5, -1) {
		t.Errorf("Center = %v, want (5,-1)", obj.Center)
	}
}

func TestSceneWriteTo(t *testing.T) {
	sc := New()
	sc.Add(shape.NewRectangle(2, 4), shape.Pt(1, 2), shape.Red)
	sc.Add(shape.NewText(shape.Helvetica12, "hi"), shape.Pt(3, 4), shape.Blue)
	_ = sc.Select(1)

	var buf bytes.Buffer
	n, err := sc.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d", n, buf.Len())
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], " 0 (1,2) #ff0000 0x") || !strings.HasSuffix(lines[0], "->Rectangle: {(-1,2) (1,2) (1,-2) (-1,-2)}") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "*1 (3,4) #0000ff 0x") || !strings.HasSuffix(lines[1], `->Text: 3(Helvetica-12) "hi"`) {
		t.Errorf("line 1 = %q", lines[1])
	}
}
