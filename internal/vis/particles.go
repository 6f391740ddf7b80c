package vis

import (
	"math"
	"math/rand"

	"github.com/marin-t/aura/internal/params"
)

const (
	particleCount  = 2000
	particleBounds = 5.0
)

// particles is a field of 2000 points orbiting the origin. Each point rotates
// about the vertical axis at an angle proportional to (0.1 + 0.2*distort)
// divided by its distance, drifts outward with speed, and reflects its drift
// direction beyond the bounds radius.
type particles struct {
	frame Frame

	pos    [particleCount][3]float64
	dir    [particleCount][3]float64
	shade  [particleCount]float64
	lastT  float64
	primed bool
}

func newParticles(rng *rand.Rand) *particles {
	p := &particles{frame: Frame{Points: make([]Point, particleCount), Bound: particleBounds}}
	for i := range p.pos {
		d := randUnit(rng)
		r := 0.5 + rng.Float64()*4
		p.pos[i] = [3]float64{d[0] * r, d[1] * r, d[2] * r}
		p.dir[i] = randUnit(rng)
		p.shade[i] = 0.55 + rng.Float64()*0.45
	}
	return p
}

func (f *particles) Name() string { return "particles" }

func (f *particles) Update(p params.VisualParams, elapsed float64) {
	dt := elapsed - f.lastT
	f.lastT = elapsed
	if !f.primed || dt < 0 {
		f.primed = true
		dt = 0
	}
	if dt > 0.25 {
		dt = 0.25 // stalled ticks advance the field at most a quarter second
	}

	col := baseColor(p)
	swirl := 0.1 + 0.2*p.Distort

	for i := range f.pos {
		pos := &f.pos[i]
		dist := math.Sqrt(pos[0]*pos[0] + pos[1]*pos[1] + pos[2]*pos[2])
		if dist < 0.25 {
			dist = 0.25
		}

		angle := dt * swirl / dist * 4
		pos[0], pos[2] = rotateY(pos[0], pos[2], angle)

		drift := dt * p.Speed * 0.4
		pos[0] += f.dir[i][0] * drift
		pos[1] += f.dir[i][1] * drift
		pos[2] += f.dir[i][2] * drift

		outward := f.dir[i][0]*pos[0] + f.dir[i][1]*pos[1] + f.dir[i][2]*pos[2]
		if outward > 0 && pos[0]*pos[0]+pos[1]*pos[1]+pos[2]*pos[2] > particleBounds*particleBounds {
			f.dir[i][0] = -f.dir[i][0]
			f.dir[i][1] = -f.dir[i][1]
			f.dir[i][2] = -f.dir[i][2]
		}

		f.frame.Points[i] = Point{
			X:     pos[0],
			Y:     pos[1],
			Z:     pos[2],
			Color: col,
			Size:  0.7,
			Alpha: f.shade[i] * clamp01(1.15-dist/particleBounds),
		}
	}
}

func (f *particles) Frame() *Frame { return &f.frame }
