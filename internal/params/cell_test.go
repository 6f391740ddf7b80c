package params

import "testing"

func TestCellReplaceSwapsWholeValue(t *testing.T) {
	c := NewCell(Default(), ModeSphere)
	next := VisualParams{
		Color:       "#ff8800",
		Speed:       1.8,
		Distort:     0.9,
		Phrase:      "bright spark",
		Explanation: "a warm surge",
		Advice:      "ride it",
	}
	c.Apply(Replace{Params: next})

	if got := c.Target(); got != next {
		t.Fatalf("Target() = %+v, want %+v", got, next)
	}
}

func TestCellPatchPreservesText(t *testing.T) {
	initial := VisualParams{
		Color: "#112233", Speed: 1, Distort: 0.5,
		Phrase: "still water", Explanation: "calm", Advice: "breathe",
	}
	c := NewCell(initial, ModeSphere)
	c.Apply(PatchOf("#aabbcc", 1.5, 0.8))

	got := c.Target()
	if got.Color != "#aabbcc" || got.Speed != 1.5 || got.Distort != 0.8 {
		t.Fatalf("patched fields = %q/%v/%v", got.Color, got.Speed, got.Distort)
	}
	if got.Phrase != "still water" || got.Explanation != "calm" || got.Advice != "breathe" {
		t.Fatalf("patch touched text fields: %+v", got)
	}
}

func TestCellPartialPatch(t *testing.T) {
	c := NewCell(VisualParams{Color: "#112233", Speed: 1, Distort: 0.5}, ModeSphere)
	speed := 2.0
	c.Apply(Patch{Speed: &speed})

	got := c.Target()
	if got.Speed != 2.0 {
		t.Fatalf("Speed = %v, want 2", got.Speed)
	}
	if got.Color != "#112233" || got.Distort != 0.5 {
		t.Fatalf("partial patch touched other fields: %+v", got)
	}
}

func TestCellLastWriterWins(t *testing.T) {
	c := NewCell(Default(), ModeSphere)
	c.Apply(Replace{Params: VisualParams{Color: "#111111", Speed: 1, Distort: 0}})
	c.Apply(PatchOf("#222222", 2, 0.2))
	c.Apply(Replace{Params: VisualParams{Color: "#333333", Speed: 3, Distort: 0.3}})

	got := c.Target()
	if got.Color != "#333333" || got.Speed != 3 {
		t.Fatalf("expected only the final write to be observed, got %+v", got)
	}
}

func TestCellSanitizesOnIngestion(t *testing.T) {
	c := NewCell(Default(), ModeSphere)
	c.Apply(Replace{Params: VisualParams{Color: "chartreuse", Speed: -1, Distort: 0.5}})

	got := c.Target()
	if got.Color != DefaultColor {
		t.Fatalf("Color = %q, want default after invalid replace", got.Color)
	}
	if got.Speed != DefaultSpeed {
		t.Fatalf("Speed = %v, want default after negative input", got.Speed)
	}
}

func TestCellSnapshotPairsTargetAndMode(t *testing.T) {
	c := NewCell(Default(), ModeAurora)
	c.SetMode(ModeNebula)

	p, m := c.Snapshot()
	if m != ModeNebula {
		t.Fatalf("mode = %v, want nebula", m)
	}
	if p.Color != DefaultColor {
		t.Fatalf("unexpected target in snapshot: %+v", p)
	}
}
