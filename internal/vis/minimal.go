package vis

import (
	"math"
	"math/rand"

	"github.com/marin-t/aura/internal/params"
)

const minimalRingPoints = 48

// minimal is a single breathing ring: radius pulses with speed, the rim
// wobbles with distort. The quietest of the seven modes.
type minimal struct {
	frame Frame
	phase float64
}

func newMinimal(rng *rand.Rand) *minimal {
	return &minimal{
		frame: Frame{Points: make([]Point, minimalRingPoints), Bound: 2},
		phase: rng.Float64() * 2 * math.Pi,
	}
}

func (m *minimal) Name() string { return "minimal" }

func (m *minimal) Update(p params.VisualParams, elapsed float64) {
	col := baseColor(p)
	breathe := 1 + 0.15*math.Sin(elapsed*p.Speed*1.6+m.phase)

	for i := range minimalRingPoints {
		angle := 2 * math.Pi * float64(i) / minimalRingPoints
		wobble := 1 + p.Distort*0.2*math.Sin(angle*3+elapsed*p.Speed*2)
		r := breathe * wobble
		m.frame.Points[i] = Point{
			X:     math.Cos(angle) * r,
			Y:     math.Sin(angle) * r,
			Z:     0,
			Color: col,
			Size:  1.4,
			Alpha: 0.9,
		}
	}
}

func (m *minimal) Frame() *Frame { return &m.frame }
