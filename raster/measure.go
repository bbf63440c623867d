package raster

import (
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/shape"
)

// shaperPool pools HarfbuzzShaper instances, which are not safe for
// concurrent use.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// MeasureText returns the advance width in pixels of s drawn in the given
// font, after shaping (kerning, ligatures). It is safe for concurrent use.
func MeasureText(id shape.FontID, s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	spec, err := lookupSpec(id)
	if err != nil {
		return 0, err
	}
	f, err := spec.family.shaping()
	if err != nil {
		return 0, fmt.Errorf("raster: parse font: %w", err)
	}

	runes := []rune(norm.NFC.String(s))
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(f),
		Size:      fixed.Int26_6(spec.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	var advance fixed.Int26_6
	for _, g := range out.Glyphs {
		advance += g.Advance
	}
	return float64(advance) / 64, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
