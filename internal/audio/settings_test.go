package audio

import (
	"math"
	"testing"

	"github.com/marin-t/aura/internal/params"
)

func applyTo(cell *params.Cell, p params.Patch) params.VisualParams {
	cell.Apply(p)
	return cell.Target()
}

func TestDerivePatchSpeedAndDistort(t *testing.T) {
	s := DefaultSettings()
	got := derivePatch(Levels{Bass: 0.4, Treble: 0.5}, s)

	if want := 0.3 + 0.4*1.5; math.Abs(*got.Speed-want) > 1e-12 {
		t.Fatalf("speed = %v, want %v", *got.Speed, want)
	}
	if want := 0.2 + 0.5*0.6; math.Abs(*got.Distort-want) > 1e-12 {
		t.Fatalf("distort = %v, want %v", *got.Distort, want)
	}
}

func TestDerivePatchCapsAtApplication(t *testing.T) {
	// Sensitivity can push band energy past 1; the caps bite here.
	got := derivePatch(Levels{Bass: 5, Treble: 5}, DefaultSettings())
	if *got.Speed != maxDerivedSpeed {
		t.Fatalf("speed = %v, want capped at %v", *got.Speed, maxDerivedSpeed)
	}
	if *got.Distort != maxDerivedDistort {
		t.Fatalf("distort = %v, want capped at %v", *got.Distort, maxDerivedDistort)
	}
}

func TestDerivePatchDisabledBands(t *testing.T) {
	s := DefaultSettings()
	s.Bass = false
	s.Treble = false
	got := derivePatch(Levels{Bass: 1, Treble: 1}, s)

	if *got.Speed != 0.3 {
		t.Fatalf("speed = %v, want floor 0.3 with bass disabled", *got.Speed)
	}
	if *got.Distort != 0.2 {
		t.Fatalf("distort = %v, want floor 0.2 with treble disabled", *got.Distort)
	}
}

func TestDerivePatchColorThreshold(t *testing.T) {
	cell := params.NewCell(params.VisualParams{Color: "#123456", Speed: 1, Distort: 0.5}, params.ModeSphere)

	// Just below the threshold the previous target color persists.
	below := derivePatch(Levels{Mid: 0.29}, DefaultSettings())
	if below.Color != nil {
		t.Fatalf("color overwritten at mid=0.29: %q", *below.Color)
	}
	if got := applyTo(cell, below); got.Color != "#123456" {
		t.Fatalf("cell color changed below threshold: %q", got.Color)
	}

	// Just above it the HSL-derived color lands.
	above := derivePatch(Levels{Mid: 0.31}, DefaultSettings())
	if above.Color == nil {
		t.Fatal("color not overwritten at mid=0.31")
	}
	want := params.HSLHex(0.31*360, 70+0.31*30, 50+0.31*20)
	if *above.Color != want {
		t.Fatalf("color = %q, want %q", *above.Color, want)
	}
	if got := applyTo(cell, above); got.Color != want {
		t.Fatalf("cell color = %q, want %q", got.Color, want)
	}
}

func TestDerivePatchColorNeedsMidEnabled(t *testing.T) {
	s := DefaultSettings()
	s.Mid = false
	got := derivePatch(Levels{Mid: 0.9}, s)
	if got.Color != nil {
		t.Fatal("color overwritten with mid band disabled")
	}
}

func TestDerivePatchHueWraps(t *testing.T) {
	// mid > 1 (overdriven sensitivity) wraps the hue rather than clamping.
	got := derivePatch(Levels{Mid: 1.2}, DefaultSettings())
	if got.Color == nil {
		t.Fatal("expected color patch")
	}
	want := params.HSLHex(math.Mod(1.2*360, 360), 70+1.2*30, 50+1.2*20)
	if *got.Color != want {
		t.Fatalf("color = %q, want %q", *got.Color, want)
	}
}

func TestDerivePatchNeverTouchesText(t *testing.T) {
	cell := params.NewCell(params.VisualParams{
		Color: "#ffffff", Speed: 1, Distort: 0.5,
		Phrase: "rising tide", Explanation: "energy building", Advice: "lean in",
	}, params.ModeSphere)

	got := applyTo(cell, derivePatch(Levels{Bass: 1, Mid: 1, Treble: 1}, DefaultSettings()))
	if got.Phrase != "rising tide" || got.Explanation != "energy building" || got.Advice != "lean in" {
		t.Fatalf("audio patch touched text: %+v", got)
	}
}
