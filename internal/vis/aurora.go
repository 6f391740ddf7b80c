package vis

import (
	"math"
	"math/rand"

	"github.com/marin-t/aura/internal/params"
)

const (
	auroraRibbons      = 3
	auroraRibbonPoints = 64
)

// aurora draws a few stacked ribbons waving parametrically with speed and
// distort, each with a small hue offset from the base color.
type aurora struct {
	frame Frame
	phase [auroraRibbons]float64
}

func newAurora(rng *rand.Rand) *aurora {
	a := &aurora{frame: Frame{Points: make([]Point, auroraRibbons*auroraRibbonPoints), Bound: 3}}
	for i := range a.phase {
		a.phase[i] = rng.Float64() * 2 * math.Pi
	}
	return a
}

func (a *aurora) Name() string { return "aurora" }

func (a *aurora) Update(p params.VisualParams, elapsed float64) {
	base := baseColor(p)
	h, s, l := base.Hsl()

	for r := range auroraRibbons {
		col := hslShift(h, s, l, float64(r)*18, 0.1*float64(r))
		level := -0.8 + 1.0*float64(r)
		shimmer := 0.6 + 0.4*math.Sin(elapsed*p.Speed*0.7+a.phase[r])

		for i := range auroraRibbonPoints {
			x := -2.6 + 5.2*float64(i)/float64(auroraRibbonPoints-1)
			wave := math.Sin(x*1.4+elapsed*p.Speed+a.phase[r]) * (0.35 + p.Distort*0.6)
			ripple := 0.12 * math.Sin(x*5+elapsed*p.Speed*2.3+a.phase[r]*2)
			a.frame.Points[r*auroraRibbonPoints+i] = Point{
				X:     x,
				Y:     level + wave + ripple,
				Z:     0.4 * float64(r),
				Color: col,
				Size:  1.2,
				Alpha: shimmer * (0.5 + 0.5*clamp01(1-math.Abs(x)/2.8)),
			}
		}
	}
}

func (a *aurora) Frame() *Frame { return &a.frame }
