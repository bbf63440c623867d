package shape

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"red", Red},
		{"navy", RGB(0, 0, 128)},
		{"#0f0", Green},
		{"#1f77b4", RGB(0x1f, 0x77, 0xb4)},
		{"rgb(10, 20, 30)", RGB(10, 20, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorUnknown(t *testing.T) {
	_, err := ParseColor("not-a-color")
	if !errors.Is(err, ErrUnknownColor) {
		t.Errorf("ParseColor error = %v, want ErrUnknownColor", err)
	}
}

func TestColorString(t *testing.T) {
	if got := RGB(0x1f, 0x77, 0xb4).String(); got != "#1f77b4" {
		t.Errorf("String() = %q, want #1f77b4", got)
	}
}

func TestColorImplementsColor(t *testing.T) {
	var c color.Color = RGB(255, 128, 0)
	got := color.NRGBAModel.Convert(c).(color.NRGBA)
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	if got != want {
		t.Errorf("NRGBA = %v, want %v", got, want)
	}
}

func TestColorDarken(t *testing.T) {
	c := RGB(200, 100, 50)
	d := c.Darken(0.2)
	if d.R >= c.R || d.G >= c.G || d.B >= c.B {
		t.Errorf("Darken(0.2) of %v = %v, want every component lower", c, d)
	}
	if got := c.Darken(0); got != c {
		t.Errorf("Darken(0) = %v, want %v", got, c)
	}
	if got := White.Darken(2); got != Black {
		t.Errorf("White.Darken(2) = %v, want black", got)
	}
}
