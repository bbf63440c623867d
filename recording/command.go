package recording

import (
	"fmt"
	"strings"

	"github.com/gogpu/shape"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdFillPolygon CommandType = iota // Fill a polygon
	CmdDrawText                       // Draw text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdFillPolygon: "FillPolygon",
	CmdDrawText:    "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	// Replay issues the command to r.
	Replay(r shape.Rasterizer)
}

// FillPolygonCommand records a FillPolygon call.
type FillPolygonCommand struct {
	Points []shape.Point
	Color  shape.Color
}

// Type implements Command.
func (FillPolygonCommand) Type() CommandType { return CmdFillPolygon }

// Replay implements Command.
func (c FillPolygonCommand) Replay(r shape.Rasterizer) { r.FillPolygon(c.Points, c.Color) }

func (c FillPolygonCommand) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FillPolygon %v [", c.Color)
	for i, p := range c.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
	}
	b.WriteByte(']')
	return b.String()
}

// DrawTextCommand records a DrawText call.
type DrawTextCommand struct {
	Pos   shape.Point
	Color shape.Color
	Font  shape.FontID
	Text  string
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// Replay implements Command.
func (c DrawTextCommand) Replay(r shape.Rasterizer) { r.DrawText(c.Pos, c.Color, c.Font, c.Text) }

func (c DrawTextCommand) String() string {
	return fmt.Sprintf("DrawText %v %v %v %q", c.Color, c.Pos, c.Font, c.Text)
}
