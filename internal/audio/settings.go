package audio

import (
	"math"

	"github.com/marin-t/aura/internal/params"
)

// Settings configures audio reactivity. It is configuration, not state:
// mutated only by explicit user action, read once per analysis tick.
type Settings struct {
	Enabled     bool
	Sensitivity float64
	Bass        bool
	Mid         bool
	Treble      bool
}

// DefaultSettings enables all three bands at unit sensitivity.
func DefaultSettings() Settings {
	return Settings{Enabled: true, Sensitivity: 1, Bass: true, Mid: true, Treble: true}
}

// Caps applied at the point where a derived value enters the parameter cell.
const (
	maxDerivedSpeed   = 2.0
	maxDerivedDistort = 1.0
	colorMidThreshold = 0.3
)

// derivePatch maps band energy onto the three audio-reactive parameter
// fields. Color is only overwritten when the mid band is enabled and its
// energy clears the threshold; below it the previous target color persists.
func derivePatch(l Levels, s Settings) params.Patch {
	bass, treble := 0.0, 0.0
	if s.Bass {
		bass = l.Bass
	}
	if s.Treble {
		treble = l.Treble
	}

	speed := math.Min(0.3+bass*1.5, maxDerivedSpeed)
	distort := math.Min(0.2+treble*0.6, maxDerivedDistort)

	patch := params.Patch{Speed: &speed, Distort: &distort}
	if s.Mid && l.Mid > colorMidThreshold {
		hue := math.Mod(l.Mid*360, 360)
		color := params.HSLHex(hue, 70+l.Mid*30, 50+l.Mid*20)
		patch.Color = &color
	}
	return patch
}
