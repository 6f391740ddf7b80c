package vis

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/harmonica"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/marin-t/aura/internal/params"
)

const (
	sphereMeshPoints = 512
	sphereCompanions = 400
)

// sphere is a distorting point-shell mesh orbited by companion particles that
// cycle radially outward. The material color is spring-smoothed locally on top
// of the already-smoothed input, so the surface trails color changes slightly.
type sphere struct {
	frame Frame

	meshDir    [sphereMeshPoints][3]float64
	meshWobble [sphereMeshPoints]float64

	compDir   [sphereCompanions][3]float64
	compPhase [sphereCompanions]float64

	distort   float64 // locally lerped toward the target each tick
	roughness float64

	spring     harmonica.Spring
	col        [3]float64 // linear RGB spring positions
	vel        [3]float64
	colRunning bool
}

func newSphere(rng *rand.Rand) *sphere {
	s := &sphere{
		frame:  Frame{Points: make([]Point, sphereMeshPoints+sphereCompanions), Bound: 3},
		spring: harmonica.NewSpring(harmonica.FPS(30), 4.5, 0.9),
	}

	// Fibonacci shell for an even mesh; wobble phases are the random part.
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := range s.meshDir {
		y := 1 - 2*float64(i)/float64(sphereMeshPoints-1)
		r := math.Sqrt(1 - y*y)
		theta := golden * float64(i)
		s.meshDir[i] = [3]float64{math.Cos(theta) * r, y, math.Sin(theta) * r}
		s.meshWobble[i] = rng.Float64() * 2 * math.Pi
	}

	for i := range s.compDir {
		s.compDir[i] = randUnit(rng)
		s.compPhase[i] = rng.Float64()
	}
	return s
}

func (s *sphere) Name() string { return "sphere" }

func (s *sphere) Update(p params.VisualParams, elapsed float64) {
	target := baseColor(p)
	tr, tg, tb := target.LinearRgb()
	if !s.colRunning {
		s.col = [3]float64{tr, tg, tb}
		s.colRunning = true
	} else {
		for i, t := range [3]float64{tr, tg, tb} {
			s.col[i], s.vel[i] = s.spring.Update(s.col[i], s.vel[i], t)
		}
	}
	material := colorful.LinearRgb(clamp01(s.col[0]), clamp01(s.col[1]), clamp01(s.col[2]))

	s.distort += (p.Distort - s.distort) * 0.08
	s.roughness += (0.3 + p.Distort*0.5 - s.roughness) * 0.08

	for i := range s.meshDir {
		d := s.meshDir[i]
		bump := math.Sin(4*d[1]+elapsed*p.Speed*1.3+s.meshWobble[i]) +
			0.5*math.Sin(7*d[0]-elapsed*p.Speed*0.9+s.meshWobble[i]*2)
		r := 1 + s.distort*0.35*bump*s.roughness
		s.frame.Points[i] = Point{
			X:     d[0] * r,
			Y:     d[1] * r,
			Z:     d[2] * r,
			Color: material,
			Size:  1,
			Alpha: 0.85,
		}
	}

	for i := range s.compDir {
		prog := math.Mod(s.compPhase[i]+elapsed*p.Speed*0.2, 1)
		wiggle := 0.08 * math.Sin(elapsed*3+s.compPhase[i]*17)
		r := 1.2 + prog*1.6 + wiggle
		d := s.compDir[i]
		s.frame.Points[sphereMeshPoints+i] = Point{
			X:     d[0] * r,
			Y:     d[1] * r,
			Z:     d[2] * r,
			Color: material,
			Size:  0.6,
			Alpha: clamp01(1 - prog),
		}
	}
}

func (s *sphere) Frame() *Frame { return &s.frame }

func randUnit(rng *rand.Rand) [3]float64 {
	for {
		x := rng.Float64()*2 - 1
		y := rng.Float64()*2 - 1
		z := rng.Float64()*2 - 1
		n := math.Sqrt(x*x + y*y + z*z)
		if n > 1e-6 && n <= 1 {
			return [3]float64{x / n, y / n, z / n}
		}
	}
}
