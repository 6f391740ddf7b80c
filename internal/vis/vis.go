// Package vis contains the seven visualization renderers and the dispatcher
// that keeps exactly one of them consuming render ticks. Each renderer owns a
// fixed-capacity buffer of primitives, laid out once at construction from an
// injected random source and evolved per tick from elapsed time and the
// current smoothed parameters.
package vis

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/marin-t/aura/internal/params"
)

// Point is one renderable primitive: a position in scene space, a display
// color, a size weight and an opacity.
type Point struct {
	X, Y, Z float64
	Color   colorful.Color
	Size    float64
	Alpha   float64
}

// Frame is the per-tick output of a renderer. Points is reused across ticks;
// Bound is the scene radius the projector scales against.
type Frame struct {
	Points []Point
	Bound  float64
}

// Renderer converts smoothed parameters and elapsed seconds into a primitive
// buffer. Update never fails: extreme speed/distort values produce extreme
// but well-defined motion.
type Renderer interface {
	Name() string
	Update(p params.VisualParams, elapsed float64)
	Frame() *Frame
}

// newRenderer constructs a fresh renderer for the mode, with its initial
// layout drawn from rng.
func newRenderer(mode params.Mode, rng *rand.Rand) Renderer {
	switch mode {
	case params.ModeParticles:
		return newParticles(rng)
	case params.ModeAurora:
		return newAurora(rng)
	case params.ModeMinimal:
		return newMinimal(rng)
	case params.ModeFluid:
		return newFluid(rng)
	case params.ModeGeometric:
		return newGeometric(rng)
	case params.ModeNebula:
		return newNebula(rng)
	default:
		return newSphere(rng)
	}
}

// baseColor parses the already-sanitized smoothed color, falling back to the
// default rather than propagating a zero color into the buffer.
func baseColor(p params.VisualParams) colorful.Color {
	c, err := params.ParseHex(p.Color)
	if err != nil {
		c, _ = params.ParseHex(params.DefaultColor)
	}
	return c
}

// hslShift derives a nearby color: hue rotated by dh degrees, lightness moved
// by dl, saturation kept.
func hslShift(h, s, l, dh, dl float64) colorful.Color {
	h = math.Mod(h+dh, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsl(h, s, clamp01(l+dl))
}

func rotateY(x, z, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return x*cos + z*sin, -x*sin + z*cos
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
