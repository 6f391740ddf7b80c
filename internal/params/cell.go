package params

import "sync"

// Update is a tagged change applied atomically to a Cell: either a full
// Replace or a field-wise Patch. Last writer wins; updates are never queued
// or merged transactionally.
type Update interface {
	apply(p VisualParams) VisualParams
}

// Replace swaps the entire target value.
type Replace struct {
	Params VisualParams
}

func (r Replace) apply(VisualParams) VisualParams {
	return Sanitize(r.Params)
}

// Patch overwrites only the fields whose pointers are non-nil, leaving the
// descriptive text untouched. This is the shape of an audio-reactive update,
// which touches color, speed and distort only.
type Patch struct {
	Color   *string
	Speed   *float64
	Distort *float64
}

func (u Patch) apply(p VisualParams) VisualParams {
	if u.Color != nil {
		p.Color = *u.Color
	}
	if u.Speed != nil {
		p.Speed = *u.Speed
	}
	if u.Distort != nil {
		p.Distort = *u.Distort
	}
	return Sanitize(p)
}

// PatchOf builds a Patch for the three audio-reactive fields.
func PatchOf(color string, speed, distort float64) Patch {
	return Patch{Color: &color, Speed: &speed, Distort: &distort}
}

// Cell is the single shared holder of the current target parameters and the
// active visualization mode. The render loop and the audio engine run on
// different goroutines, so access is mutex-guarded; writers never block each
// other for more than a field copy.
type Cell struct {
	mu     sync.Mutex
	target VisualParams
	mode   Mode
}

// NewCell creates a cell holding the sanitized initial value.
func NewCell(initial VisualParams, mode Mode) *Cell {
	return &Cell{target: Sanitize(initial), mode: mode}
}

// Apply applies one tagged update atomically.
func (c *Cell) Apply(u Update) {
	c.mu.Lock()
	c.target = u.apply(c.target)
	c.mu.Unlock()
}

// Target returns the most recently written parameter value.
func (c *Cell) Target() VisualParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// SetMode selects the active visualization mode.
func (c *Cell) SetMode(m Mode) {
	c.mu.Lock()
	c.mode = m
	c.mu.Unlock()
}

// Snapshot returns the current target and mode as one consistent pair.
func (c *Cell) Snapshot() (VisualParams, Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target, c.mode
}
