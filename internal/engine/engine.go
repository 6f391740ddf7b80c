package engine

import (
	"math/rand"

	"github.com/marin-t/aura/internal/params"
	"github.com/marin-t/aura/internal/vis"
)

// Engine wires the parameter cell, the interpolation core and the mode
// dispatcher into one render-tick pipeline:
//
//	cell snapshot → smoothing → active renderer → frame
//
// Step runs on the UI loop; writers publish to the cell from wherever they
// live.
type Engine struct {
	cell     *params.Cell
	disp     *vis.Dispatcher
	smoother *Smoother
}

// New builds an engine around the cell, activating the cell's current mode.
// The rng seeds every renderer layout the dispatcher will ever build.
func New(cell *params.Cell, rng *rand.Rand) *Engine {
	target, mode := cell.Snapshot()
	return &Engine{
		cell:     cell,
		disp:     vis.NewDispatcher(mode, rng),
		smoother: NewSmoother(target),
	}
}

// Step advances one render tick at the given elapsed time (seconds since
// mount) and returns the frame to draw plus the displayed parameters behind
// it. It always reads the most recent cell value: intermediate writes between
// two ticks are never observed.
func (e *Engine) Step(elapsed float64) (*vis.Frame, params.VisualParams) {
	target, mode := e.cell.Snapshot()
	e.disp.SetMode(mode)

	displayed := e.smoother.Advance(target)
	r := e.disp.Active()
	r.Update(displayed, elapsed)
	return r.Frame(), displayed
}

// Mode reports the mode of the renderer currently consuming ticks.
func (e *Engine) Mode() params.Mode { return e.disp.Mode() }

// ModeName reports the active renderer's display name.
func (e *Engine) ModeName() string { return e.disp.Active().Name() }
