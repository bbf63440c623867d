package scene

import "github.com/gogpu/shape"

// DefaultBorderWidth is the outline width used for the selected object.
const DefaultBorderWidth = 4

// defaultDarken is how much the object color is darkened for the border
// when no border color is configured.
const defaultDarken = 0.2

// Option configures a Scene during creation.
type Option func(*options)

type options struct {
	border      shape.Color
	borderSet   bool
	borderWidth int
}

func defaultOptions() options {
	return options{borderWidth: DefaultBorderWidth}
}

// WithBorder sets the color and width of the selection outline.
// Without it the outline is the selected object's color, darkened.
func WithBorder(c shape.Color, width int) Option {
	return func(o *options) {
		o.border = c
		o.borderSet = true
		o.borderWidth = width
	}
}

// WithBorderWidth sets only the width of the selection outline.
func WithBorderWidth(width int) Option {
	return func(o *options) {
		o.borderWidth = width
	}
}
