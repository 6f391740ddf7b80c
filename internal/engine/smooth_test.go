package engine

import (
	"math"
	"testing"

	"github.com/marin-t/aura/internal/params"
)

func TestAdvanceScenario(t *testing.T) {
	// Target {#ff0000, 1, 0.5} from displayed {#000000, 0, 0}: after 60 ticks
	// speed must exceed 0.95 and distort 0.475.
	s := NewSmoother(params.VisualParams{Color: "#000000", Speed: 0, Distort: 0})
	target := params.VisualParams{Color: "#ff0000", Speed: 1, Distort: 0.5}

	var got params.VisualParams
	for range 60 {
		got = s.Advance(target)
	}
	if got.Speed <= 0.95 {
		t.Fatalf("speed after 60 ticks = %v, want > 0.95", got.Speed)
	}
	if got.Distort <= 0.475 {
		t.Fatalf("distort after 60 ticks = %v, want > 0.475", got.Distort)
	}
}

func TestAdvanceGeometricDecay(t *testing.T) {
	s := NewSmoother(params.VisualParams{Color: "#000000", Speed: 0, Distort: 0})
	target := params.VisualParams{Color: "#000000", Speed: 1, Distort: 0}

	prev := 1.0
	for range 60 {
		gap := target.Speed - s.Advance(target).Speed
		if gap >= prev {
			t.Fatalf("gap did not shrink: %v then %v", prev, gap)
		}
		prev = gap
	}
	// Each tick removes the same fraction, so the gap is (1-α)^n.
	want := math.Pow(1-Alpha, 60)
	if math.Abs(prev-want) > 1e-9 {
		t.Fatalf("gap after 60 ticks = %v, want %v", prev, want)
	}
}

func TestAdvanceConvergesFully(t *testing.T) {
	s := NewSmoother(params.VisualParams{Color: "#000000", Speed: 0, Distort: 0})
	target := params.VisualParams{Color: "#ff0000", Speed: 3.3, Distort: 1.2}

	var got params.VisualParams
	for range 400 {
		got = s.Advance(target)
	}
	if math.Abs(got.Speed-target.Speed) > 1e-3 || math.Abs(got.Distort-target.Distort) > 1e-3 {
		t.Fatalf("scalars did not converge: %+v", got)
	}
	if got.Color != target.Color {
		t.Fatalf("color did not converge: %q", got.Color)
	}
}

func TestAdvanceCopiesTextUnsmoothed(t *testing.T) {
	s := NewSmoother(params.Default())
	target := params.VisualParams{
		Color: "#123456", Speed: 1, Distort: 0.4,
		Phrase: "quiet dawn", Explanation: "low arousal", Advice: "stay with it",
	}

	got := s.Advance(target)
	if got.Phrase != target.Phrase || got.Explanation != target.Explanation || got.Advice != target.Advice {
		t.Fatalf("text fields not copied through: %+v", got)
	}
	// Text switches instantly even while numerics are still mid-blend.
	if got.Speed == target.Speed && got.Color == target.Color {
		t.Fatal("numeric fields jumped to target in one tick")
	}
}

func TestAdvanceColorMovesEveryEarlyTick(t *testing.T) {
	s := NewSmoother(params.VisualParams{Color: "#000000", Speed: 0, Distort: 0})
	target := params.VisualParams{Color: "#ffffff", Speed: 0, Distort: 0}

	prev, _ := params.ParseHex(s.Displayed().Color)
	for i := range 20 {
		cur, err := params.ParseHex(s.Advance(target).Color)
		if err != nil {
			t.Fatalf("tick %d produced invalid color: %v", i, err)
		}
		if cur.R < prev.R {
			t.Fatalf("tick %d moved away from target", i)
		}
		prev = cur
	}
	if prev.R == 0 {
		t.Fatal("color never moved toward target")
	}
}

func TestAdvanceToleratesTargetSwapMidBlend(t *testing.T) {
	s := NewSmoother(params.VisualParams{Color: "#000000", Speed: 0, Distort: 0})
	for range 10 {
		s.Advance(params.VisualParams{Color: "#ff0000", Speed: 2, Distort: 1})
	}
	mid := s.Displayed()

	// Swap to a new target; the next tick decays toward it from wherever the
	// displayed state is.
	got := s.Advance(params.VisualParams{Color: "#0000ff", Speed: 0.5, Distort: 0.1})
	if got.Speed >= mid.Speed {
		t.Fatalf("speed kept rising after target dropped: %v -> %v", mid.Speed, got.Speed)
	}
}

func TestAdvanceSanitizesTarget(t *testing.T) {
	s := NewSmoother(params.Default())
	got := s.Advance(params.VisualParams{Color: "bogus", Speed: math.NaN(), Distort: 0.5})
	if math.IsNaN(got.Speed) {
		t.Fatal("NaN propagated into displayed state")
	}
	if _, err := params.ParseHex(got.Color); err != nil {
		t.Fatalf("invalid color propagated: %v", err)
	}
}
