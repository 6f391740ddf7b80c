package vis

import (
	"math"
	"math/rand"

	"github.com/marin-t/aura/internal/params"
)

const fluidGrid = 24

// fluid is a height field of two crossing traveling waves. Speed sets the
// wave velocity, distort the interference amplitude.
type fluid struct {
	frame  Frame
	phaseA float64
	phaseB float64
}

func newFluid(rng *rand.Rand) *fluid {
	return &fluid{
		frame:  Frame{Points: make([]Point, fluidGrid*fluidGrid), Bound: 3},
		phaseA: rng.Float64() * 2 * math.Pi,
		phaseB: rng.Float64() * 2 * math.Pi,
	}
}

func (f *fluid) Name() string { return "fluid" }

func (f *fluid) Update(p params.VisualParams, elapsed float64) {
	base := baseColor(p)
	h, s, l := base.Hsl()

	for gz := range fluidGrid {
		for gx := range fluidGrid {
			x := -2.4 + 4.8*float64(gx)/float64(fluidGrid-1)
			z := -2.4 + 4.8*float64(gz)/float64(fluidGrid-1)

			y := 0.4*math.Sin(x*1.8+elapsed*p.Speed*1.2+f.phaseA) +
				0.3*math.Sin(z*2.2-elapsed*p.Speed*0.9+f.phaseB) +
				p.Distort*0.35*math.Sin((x+z)*3+elapsed*p.Speed*2)

			// Crests brighten, troughs sink into shadow.
			depth := clamp01(0.5 + y*0.6)
			f.frame.Points[gz*fluidGrid+gx] = Point{
				X:     x,
				Y:     y - 0.6,
				Z:     z,
				Color: hslShift(h, s, l, 0, (depth-0.5)*0.5),
				Size:  0.9,
				Alpha: 0.45 + 0.5*depth,
			}
		}
	}
}

func (f *fluid) Frame() *Frame { return &f.frame }
