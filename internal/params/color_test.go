package params

import "testing"

func TestParseHexRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "#fff", "ff0000", "#gg0000", "#ff00001"} {
		if _, err := ParseHex(s); err == nil {
			t.Fatalf("ParseHex(%q) accepted malformed input", s)
		}
	}
}

func TestParseHexFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"#000000", "#ffffff", "#ff0000", "#1a2b3c"} {
		c, err := ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q) error = %v", s, err)
		}
		if got := FormatHex(c); got != s {
			t.Fatalf("round trip of %q = %q", s, got)
		}
	}
}

func TestHSLHexPrimaries(t *testing.T) {
	tests := []struct {
		hue, sat, light float64
		want            string
	}{
		{0, 100, 50, "#ff0000"},
		{120, 100, 50, "#00ff00"},
		{240, 100, 50, "#0000ff"},
		{0, 0, 100, "#ffffff"},
		{0, 0, 0, "#000000"},
	}
	for _, tt := range tests {
		if got := HSLHex(tt.hue, tt.sat, tt.light); got != tt.want {
			t.Fatalf("HSLHex(%v,%v,%v) = %q, want %q", tt.hue, tt.sat, tt.light, got, tt.want)
		}
	}
}

func TestHSLHexClampsAndWraps(t *testing.T) {
	if got, want := HSLHex(360, 100, 50), HSLHex(0, 100, 50); got != want {
		t.Fatalf("hue 360 = %q, want same as hue 0 (%q)", got, want)
	}
	// Saturation/lightness beyond 100% must not produce invalid output.
	if _, err := ParseHex(HSLHex(480, 130, 90)); err != nil {
		t.Fatalf("overdriven HSL produced invalid hex: %v", err)
	}
}
