// Package params holds the shared visual parameter state: the VisualParams
// value that fully determines a visualization's target appearance, the active
// visualization mode, and the Cell through which collaborators publish updates.
package params

import "math"

// Default field values substituted for missing or invalid input.
const (
	DefaultColor   = "#7c6ff0"
	DefaultSpeed   = 1.0
	DefaultDistort = 0.3
)

// VisualParams is the minimal parameter tuple driving a visualization.
// Color is always a "#rrggbb" hex string; Speed and Distort are finite and
// non-negative. Values are immutable once produced: updates construct a new
// value, never mutate in place.
type VisualParams struct {
	Color       string
	Speed       float64
	Distort     float64
	Phrase      string
	Explanation string
	Advice      string // empty when absent
}

// Default returns the parameter set shown before any collaborator has
// published anything.
func Default() VisualParams {
	return VisualParams{
		Color:   DefaultColor,
		Speed:   DefaultSpeed,
		Distort: DefaultDistort,
	}
}

// Sanitize replaces invalid fields with safe defaults: a malformed color
// becomes DefaultColor, non-finite or negative scalars become their defaults.
// Valid values pass through untouched.
func Sanitize(p VisualParams) VisualParams {
	if _, err := ParseHex(p.Color); err != nil {
		p.Color = DefaultColor
	}
	p.Speed = sanitizeScalar(p.Speed, DefaultSpeed)
	p.Distort = sanitizeScalar(p.Distort, DefaultDistort)
	return p
}

func sanitizeScalar(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fallback
	}
	return v
}

// Mode selects which visualization renderer is active. Exactly one mode is
// active at any time.
type Mode int

const (
	ModeSphere Mode = iota
	ModeParticles
	ModeAurora
	ModeMinimal
	ModeFluid
	ModeGeometric
	ModeNebula
)

// Modes lists every visualization mode in display order.
func Modes() []Mode {
	return []Mode{
		ModeSphere,
		ModeParticles,
		ModeAurora,
		ModeMinimal,
		ModeFluid,
		ModeGeometric,
		ModeNebula,
	}
}

func (m Mode) String() string {
	switch m {
	case ModeSphere:
		return "sphere"
	case ModeParticles:
		return "particles"
	case ModeAurora:
		return "aurora"
	case ModeMinimal:
		return "minimal"
	case ModeFluid:
		return "fluid"
	case ModeGeometric:
		return "geometric"
	case ModeNebula:
		return "nebula"
	default:
		return "unknown"
	}
}

// Next returns the mode following m, wrapping after the last one.
func (m Mode) Next() Mode {
	return (m + 1) % Mode(len(Modes()))
}

// ParseMode resolves a mode name as it appears on the command line.
func ParseMode(name string) (Mode, bool) {
	for _, m := range Modes() {
		if m.String() == name {
			return m, true
		}
	}
	return ModeSphere, false
}
