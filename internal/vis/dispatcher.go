package vis

import (
	"math/rand"

	"github.com/marin-t/aura/internal/params"
)

// Dispatcher owns the active renderer. Switching modes drops the old
// renderer's buffers entirely and builds the new one from fresh randomness;
// no state survives a switch.
type Dispatcher struct {
	rng    *rand.Rand
	mode   params.Mode
	active Renderer
}

// NewDispatcher activates the given mode immediately. The random source seeds
// every renderer's initial layout, so a fixed seed yields reproducible scenes.
func NewDispatcher(mode params.Mode, rng *rand.Rand) *Dispatcher {
	return &Dispatcher{
		rng:    rng,
		mode:   mode,
		active: newRenderer(mode, rng),
	}
}

// SetMode switches the active renderer. Re-selecting the current mode is a
// no-op; the running layout is kept.
func (d *Dispatcher) SetMode(mode params.Mode) {
	if mode == d.mode {
		return
	}
	d.mode = mode
	d.active = newRenderer(mode, d.rng)
}

// Mode reports the active mode.
func (d *Dispatcher) Mode() params.Mode { return d.mode }

// Active returns the renderer currently consuming render ticks.
func (d *Dispatcher) Active() Renderer { return d.active }
