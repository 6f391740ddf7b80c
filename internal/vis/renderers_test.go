package vis

import (
	"math"
	"math/rand"
	"testing"

	"github.com/marin-t/aura/internal/params"
)

func allRenderers(seed int64) []Renderer {
	rng := rand.New(rand.NewSource(seed))
	var rs []Renderer
	for _, m := range params.Modes() {
		rs = append(rs, newRenderer(m, rng))
	}
	return rs
}

func TestRenderersSurviveExtremeInputs(t *testing.T) {
	extremes := []params.VisualParams{
		{Color: "#ffffff", Speed: 0, Distort: 0},
		{Color: "#000000", Speed: 4000, Distort: 1500},
		{Color: "#00ff88", Speed: 1e9, Distort: 1e9},
	}
	for _, r := range allRenderers(5) {
		for _, p := range extremes {
			for i := range 5 {
				r.Update(p, float64(i)*0.033)
			}
			for _, pt := range r.Frame().Points {
				if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z) {
					t.Fatalf("%s produced NaN position under %+v", r.Name(), p)
				}
			}
		}
	}
}

func TestRenderersKeepBufferCapacityAcrossTicks(t *testing.T) {
	for _, r := range allRenderers(9) {
		initial := len(r.Frame().Points)
		for i := range 30 {
			r.Update(testParams(), float64(i)*0.05)
		}
		if got := len(r.Frame().Points); got != initial {
			t.Fatalf("%s buffer resized from %d to %d", r.Name(), initial, got)
		}
	}
}

func TestRenderersAnimate(t *testing.T) {
	// Evolution is driven by elapsed time: two distant instants must differ.
	for _, r := range allRenderers(13) {
		r.Update(testParams(), 0.1)
		before := append([]Point(nil), r.Frame().Points...)
		r.Update(testParams(), 2.0)

		same := true
		for i, pt := range r.Frame().Points {
			if pt != before[i] {
				same = false
				break
			}
		}
		if same {
			t.Fatalf("%s produced identical frames at t=0.1 and t=2.0", r.Name())
		}
	}
}

func TestParticlesStayReflectedNearBounds(t *testing.T) {
	f := newParticles(rand.New(rand.NewSource(2)))
	p := params.VisualParams{Color: "#ffffff", Speed: 4, Distort: 1}
	for i := range 2000 {
		f.Update(p, float64(i)*0.05)
	}
	// Outward drift reverses at the bounds radius, so nothing escapes far.
	limit := particleBounds + 0.5
	for i, pt := range f.Frame().Points {
		d := math.Sqrt(pt.X*pt.X + pt.Y*pt.Y + pt.Z*pt.Z)
		if d > limit {
			t.Fatalf("particle %d escaped to distance %.2f", i, d)
		}
	}
}

func TestSphereMaterialColorTrailsTarget(t *testing.T) {
	s := newSphere(rand.New(rand.NewSource(4)))
	s.Update(params.VisualParams{Color: "#000000", Speed: 1, Distort: 0}, 0)

	// One tick after a jump to white the local spring must lag behind.
	s.Update(params.VisualParams{Color: "#ffffff", Speed: 1, Distort: 0}, 0.033)
	c := s.Frame().Points[0].Color
	r, g, b := c.RGB255()
	if r == 255 && g == 255 && b == 255 {
		t.Fatal("sphere material snapped to target instead of springing")
	}

	for i := range 300 {
		s.Update(params.VisualParams{Color: "#ffffff", Speed: 1, Distort: 0}, 0.066+float64(i)*0.033)
	}
	r, g, b = s.Frame().Points[0].Color.RGB255()
	if r < 250 || g < 250 || b < 250 {
		t.Fatalf("sphere material never converged: got %d,%d,%d", r, g, b)
	}
}

func TestGeometricEdgeCount(t *testing.T) {
	g := newGeometric(rand.New(rand.NewSource(6)))
	if len(g.edges) != 30 {
		t.Fatalf("icosahedron edge count = %d, want 30", len(g.edges))
	}
}
