package recording

import (
	"slices"
	"sync"

	"github.com/gogpu/shape"
)

// Recorder captures drawing operations as commands.
//
// Recorder is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	commands []Command
}

var _ shape.Rasterizer = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 64)}
}

// FillPolygon implements shape.Rasterizer. The points are copied.
func (r *Recorder) FillPolygon(points []shape.Point, c shape.Color) {
	r.add(FillPolygonCommand{Points: slices.Clone(points), Color: c})
}

// DrawText implements shape.Rasterizer.
func (r *Recorder) DrawText(pos shape.Point, c shape.Color, font shape.FontID, s string) {
	r.add(DrawTextCommand{Pos: pos, Color: c, Font: font, Text: s})
}

func (r *Recorder) add(cmd Command) {
	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	r.mu.Unlock()
}

// Commands returns a snapshot of the recorded commands in call order.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.commands)
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.commands = r.commands[:0]
	r.mu.Unlock()
}

// Playback replays the recorded commands, in order, into dst.
func (r *Recorder) Playback(dst shape.Rasterizer) {
	for _, cmd := range r.Commands() {
		cmd.Replay(dst)
	}
}
