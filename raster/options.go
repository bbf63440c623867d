package raster

import "github.com/gogpu/shape"

// Option configures a Canvas during creation.
//
// Example:
//
//	// Default: white background, y axis pointing up
//	c := raster.New(640, 480)
//
//	// Black background, image coordinates (y axis pointing down)
//	c := raster.New(640, 480, raster.WithBackground(shape.Black), raster.WithYUp(false))
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	background shape.Color
	yUp        bool
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		background: shape.White,
		yUp:        true,
	}
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(c shape.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithYUp selects the coordinate convention. With yUp (the default) the
// origin is the bottom-left pixel corner, matching an orthographic
// projection; otherwise it is the top-left corner as in image.Image.
func WithYUp(yUp bool) Option {
	return func(o *options) {
		o.yUp = yUp
	}
}
