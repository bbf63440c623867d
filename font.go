package shape

import "strconv"

// FontID identifies one of the fixed set of bitmap fonts a Rasterizer can
// render text with.
type FontID int

const (
	Fixed8x13    FontID = iota // Fixed-width, 8x13 cells
	Fixed9x15                  // Fixed-width, 9x15 cells
	Helvetica10                // Proportional sans, 10px
	Helvetica12                // Proportional sans, 12px
	Helvetica18                // Proportional sans, 18px
	TimesRoman10               // Proportional serif, 10px
	TimesRoman24               // Proportional serif, 24px
)

// fontNames is the display-name table. It is never written after
// initialization.
var fontNames = map[FontID]string{
	Fixed8x13:    "Fixed-8x13",
	Fixed9x15:    "Fixed-9x15",
	Helvetica10:  "Helvetica-10",
	Helvetica12:  "Helvetica-12",
	Helvetica18:  "Helvetica-18",
	TimesRoman10: "Times-Roman-10",
	TimesRoman24: "Times-Roman-24",
}

// fontCodes is the reverse of fontNames.
var fontCodes = func() map[string]FontID {
	m := make(map[string]FontID, len(fontNames))
	for id, name := range fontNames {
		m[name] = id
	}
	return m
}()

// Name returns the display name of the font, or "" if f is not one of
// the supported fonts.
func (f FontID) Name() string {
	return fontNames[f]
}

// Valid reports whether f is one of the supported fonts.
func (f FontID) Valid() bool {
	_, ok := fontNames[f]
	return ok
}

// String returns the display name, or "FontID(n)" for unknown fonts.
func (f FontID) String() string {
	if name, ok := fontNames[f]; ok {
		return name
	}
	return "FontID(" + strconv.Itoa(int(f)) + ")"
}

// FontByName looks up a font by its display name, e.g. "Helvetica-12".
func FontByName(name string) (FontID, bool) {
	id, ok := fontCodes[name]
	return id, ok
}

// Fonts returns all supported fonts in declaration order.
func Fonts() []FontID {
	return []FontID{
		Fixed8x13, Fixed9x15,
		Helvetica10, Helvetica12, Helvetica18,
		TimesRoman10, TimesRoman24,
	}
}
