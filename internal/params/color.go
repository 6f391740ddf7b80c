package params

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses a "#rrggbb" color string.
func ParseHex(s string) (colorful.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return colorful.Color{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// FormatHex renders a color as a lowercase "#rrggbb" string.
func FormatHex(c colorful.Color) string {
	return c.Clamped().Hex()
}

// HSLHex converts hue (degrees), saturation and lightness (percent) to a hex
// string. Saturation and lightness beyond 100 are clamped; hue wraps.
func HSLHex(hue, sat, light float64) string {
	for hue < 0 {
		hue += 360
	}
	for hue >= 360 {
		hue -= 360
	}
	s := clamp01(sat / 100)
	l := clamp01(light / 100)
	return FormatHex(colorful.Hsl(hue, s, l))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
