package scene

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/shape"
)

// ErrNoObject is returned when selecting an index outside the scene.
var ErrNoObject = errors.New("scene: no such object")

// Object is a shape placed in the scene.
type Object struct {
	Shape  shape.Shape
	Center shape.Point
	Color  shape.Color
}

// Move shifts the object's center by delta.
func (o *Object) Move(delta shape.Point) {
	o.Center = o.Center.Add(delta)
}

// Draw draws the object filled at its center.
func (o *Object) Draw(r shape.Rasterizer) {
	o.Shape.Draw(r, o.Center, o.Color, false, 0)
}

// Scene is an ordered list of objects with an optional selection.
//
// Scene is not safe for concurrent use.
type Scene struct {
	objects  []*Object
	selected int
	opts     options
}

// New creates an empty scene with nothing selected.
func New(opts ...Option) *Scene {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scene{selected: -1, opts: o}
}

// Add places s at center and returns the new object.
func (sc *Scene) Add(s shape.Shape, center shape.Point, c shape.Color) *Object {
	obj := &Object{Shape: s, Center: center, Color: c}
	sc.objects = append(sc.objects, obj)
	return obj
}

// Objects returns the objects in drawing order. The slice is shared with
// the scene and must not be modified.
func (sc *Scene) Objects() []*Object { return sc.objects }

// Len returns the number of objects.
func (sc *Scene) Len() int { return len(sc.objects) }

// Select makes the object at index i the selected one.
func (sc *Scene) Select(i int) error {
	if i < 0 || i >= len(sc.objects) {
		return fmt.Errorf("%w: index %d of %d", ErrNoObject, i, len(sc.objects))
	}
	sc.selected = i
	return nil
}

// Deselect clears the selection.
func (sc *Scene) Deselect() { sc.selected = -1 }

// Selected returns the selected object, if any.
func (sc *Scene) Selected() (*Object, bool) {
	if sc.selected < 0 {
		return nil, false
	}
	return sc.objects[sc.selected], true
}

// MoveSelected shifts the selected object by delta. It reports whether
// an object was selected.
func (sc *Scene) MoveSelected(delta shape.Point) bool {
	obj, ok := sc.Selected()
	if !ok {
		return false
	}
	obj.Move(delta)
	return true
}

// Draw draws every object in order, outlining the selected one.
func (sc *Scene) Draw(r shape.Rasterizer) {
	shape.Logger().Debug("scene: draw", slog.Int("objects", len(sc.objects)), slog.Int("selected", sc.selected))
	for i, obj := range sc.objects {
		if i == sc.selected {
			obj.Shape.Draw(r, obj.Center, sc.borderColor(obj), true, sc.opts.borderWidth)
		}
		obj.Draw(r)
	}
}

func (sc *Scene) borderColor(obj *Object) shape.Color {
	if sc.opts.borderSet {
		return sc.opts.border
	}
	return obj.Color.Darken(defaultDarken)
}

// WriteTo writes one line per object: its index, center, color and the
// shape's Describe output. It implements io.WriterTo.
func (sc *Scene) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, obj := range sc.objects {
		mark := ' '
		if i == sc.selected {
			mark = '*'
		}
		n, err := fmt.Fprintf(w, "%c%d %v %v %s\n", mark, i, obj.Center, obj.Color, obj.Shape.Describe())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
