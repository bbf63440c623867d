package raster

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/shape"
)

// ErrUnsupportedFont is returned for font ids outside the bitmap font set.
var ErrUnsupportedFont = errors.New("raster: unsupported font")

// family is one embedded TTF, parsed lazily for glyph drawing and for
// shaping.
type family struct {
	glyphs  func() (*opentype.Font, error)
	shaping func() (*gotext.Font, error)
}

func newFamily(ttf []byte) *family {
	return &family{
		glyphs: sync.OnceValues(func() (*opentype.Font, error) {
			return opentype.Parse(ttf)
		}),
		shaping: sync.OnceValues(func() (*gotext.Font, error) {
			face, err := gotext.ParseTTF(bytes.NewReader(ttf))
			if err != nil {
				return nil, err
			}
			return face.Font, nil
		}),
	}
}

var (
	mono    = newFamily(gomono.TTF)
	regular = newFamily(goregular.TTF)
	medium  = newFamily(gomedium.TTF)
)

// fontSpec maps a bitmap font onto a scalable family and pixel size.
type fontSpec struct {
	family *family
	size   float64
}

var fontSpecs = map[shape.FontID]fontSpec{
	shape.Fixed8x13:    {mono, 13},
	shape.Fixed9x15:    {mono, 15},
	shape.Helvetica10:  {regular, 10},
	shape.Helvetica12:  {regular, 12},
	shape.Helvetica18:  {regular, 18},
	shape.TimesRoman10: {medium, 10},
	shape.TimesRoman24: {medium, 24},
}

func lookupSpec(id shape.FontID) (fontSpec, error) {
	spec, ok := fontSpecs[id]
	if !ok {
		return fontSpec{}, fmt.Errorf("%w: %v", ErrUnsupportedFont, id)
	}
	return spec, nil
}

// newFace creates a glyph face for id at its pixel size. The face is not
// safe for concurrent use.
func newFace(id shape.FontID) (font.Face, error) {
	spec, err := lookupSpec(id)
	if err != nil {
		return nil, err
	}
	f, err := spec.family.glyphs()
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    spec.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: create face: %w", err)
	}
	return face, nil
}
