package vis

import (
	"math"
	"math/rand"

	"github.com/marin-t/aura/internal/params"
)

const (
	geometricVertices    = 12
	geometricEdgeSamples = 6
	geometricShells      = 2
)

var geometricShellScales = [geometricShells]float64{1.6, 2.2}

// geometric is an icosahedron wireframe inside two larger shell copies. The
// whole figure rotates with speed; vertices pulse and edge opacity oscillates,
// both phase-offset by index.
type geometric struct {
	frame Frame
	verts [geometricVertices][3]float64
	edges [][2]int
	spin  float64
}

func newGeometric(rng *rand.Rand) *geometric {
	g := &geometric{spin: rng.Float64() * 2 * math.Pi}

	phi := (1 + math.Sqrt(5)) / 2
	raw := [][3]float64{
		{0, 1, phi}, {0, -1, phi}, {0, 1, -phi}, {0, -1, -phi},
		{1, phi, 0}, {-1, phi, 0}, {1, -phi, 0}, {-1, -phi, 0},
		{phi, 0, 1}, {-phi, 0, 1}, {phi, 0, -1}, {-phi, 0, -1},
	}
	norm := math.Sqrt(1 + phi*phi)
	for i, v := range raw {
		g.verts[i] = [3]float64{v[0] / norm, v[1] / norm, v[2] / norm}
	}

	// Icosahedron edges join vertex pairs at the minimal distance (2/norm).
	edgeLen := 2 / norm
	for i := 0; i < geometricVertices; i++ {
		for j := i + 1; j < geometricVertices; j++ {
			dx := g.verts[i][0] - g.verts[j][0]
			dy := g.verts[i][1] - g.verts[j][1]
			dz := g.verts[i][2] - g.verts[j][2]
			if math.Abs(math.Sqrt(dx*dx+dy*dy+dz*dz)-edgeLen) < 1e-9 {
				g.edges = append(g.edges, [2]int{i, j})
			}
		}
	}

	total := geometricVertices + len(g.edges)*geometricEdgeSamples*(1+geometricShells)
	g.frame = Frame{Points: make([]Point, total), Bound: 2.6}
	return g
}

func (g *geometric) Name() string { return "geometric" }

func (g *geometric) Update(p params.VisualParams, elapsed float64) {
	col := baseColor(p)
	angle := g.spin + elapsed*0.3*p.Speed
	pulseAmp := 0.08 + p.Distort*0.15

	var scaled [geometricVertices][3]float64
	idx := 0
	for i, v := range g.verts {
		pulse := 1 + pulseAmp*math.Sin(elapsed*2+float64(i)*0.5)
		x, z := rotateY(v[0]*pulse, v[2]*pulse, angle)
		scaled[i] = [3]float64{x, v[1] * pulse, z}
		g.frame.Points[idx] = Point{
			X: x, Y: v[1] * pulse, Z: z,
			Color: col, Size: 1.8, Alpha: 0.95,
		}
		idx++
	}

	shells := append([]float64{1}, geometricShellScales[:]...)
	for si, scale := range shells {
		for e, edge := range g.edges {
			opacity := 0.4 + 0.35*math.Sin(elapsed*1.5+float64(e)*0.3+float64(si))
			a, b := scaled[edge[0]], scaled[edge[1]]
			for k := range geometricEdgeSamples {
				t := (float64(k) + 0.5) / geometricEdgeSamples
				g.frame.Points[idx] = Point{
					X:     (a[0] + (b[0]-a[0])*t) * scale,
					Y:     (a[1] + (b[1]-a[1])*t) * scale,
					Z:     (a[2] + (b[2]-a[2])*t) * scale,
					Color: col,
					Size:  0.6,
					Alpha: clamp01(opacity) / (0.8 + 0.6*float64(si)),
				}
				idx++
			}
		}
	}
}

func (g *geometric) Frame() *Frame { return &g.frame }
