package vis

import (
	"math"
	"math/rand"

	"github.com/marin-t/aura/internal/params"
)

const (
	nebulaClusters      = 5
	nebulaClusterPoints = 500
)

// nebula is five point clusters drifting in a shared slow rotation. Each
// cluster swirls with its own phase offset, scaled by distort, and pulses its
// opacity independently.
type nebula struct {
	frame   Frame
	centers [nebulaClusters][3]float64
	offsets [nebulaClusters * nebulaClusterPoints][3]float64
}

func newNebula(rng *rand.Rand) *nebula {
	n := &nebula{
		frame: Frame{Points: make([]Point, nebulaClusters*nebulaClusterPoints), Bound: 4},
	}
	for c := range n.centers {
		angle := 2*math.Pi*float64(c)/nebulaClusters + rng.Float64()*0.5
		n.centers[c] = [3]float64{
			math.Cos(angle) * 2.2,
			(rng.Float64() - 0.5) * 1.2,
			math.Sin(angle) * 2.2,
		}
	}
	for i := range n.offsets {
		// Rough gaussian blob around each cluster center.
		n.offsets[i] = [3]float64{
			gauss(rng) * 0.7,
			gauss(rng) * 0.45,
			gauss(rng) * 0.7,
		}
	}
	return n
}

func gauss(rng *rand.Rand) float64 {
	return (rng.Float64() + rng.Float64() + rng.Float64() - 1.5) / 1.5
}

func (n *nebula) Name() string { return "nebula" }

func (n *nebula) Update(p params.VisualParams, elapsed float64) {
	base := baseColor(p)
	h, s, l := base.Hsl()
	global := elapsed * 0.05 * p.Speed

	for c := range nebulaClusters {
		ci := float64(c)
		swirlX := math.Sin(elapsed*0.3+ci) * p.Distort
		swirlZ := math.Cos(elapsed*0.3+ci) * p.Distort
		pulse := 0.55 + 0.4*math.Sin(elapsed*0.8+ci*1.3)
		col := hslShift(h, s, l, ci*12-24, 0)

		center := n.centers[c]
		for k := range nebulaClusterPoints {
			i := c*nebulaClusterPoints + k
			off := n.offsets[i]
			x := center[0] + off[0] + swirlX
			y := center[1] + off[1]
			z := center[2] + off[2] + swirlZ
			x, z = rotateY(x, z, global)

			n.frame.Points[i] = Point{
				X:     x,
				Y:     y,
				Z:     z,
				Color: col,
				Size:  0.7,
				Alpha: clamp01(pulse * (1 - 0.3*math.Abs(off[0]))),
			}
		}
	}
}

func (n *nebula) Frame() *Frame { return &n.frame }
