// Package engine drives the render loop core: each tick it blends the
// displayed parameters toward the parameter cell's current target and feeds
// the result to the active renderer.
package engine

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/marin-t/aura/internal/params"
)

// Alpha is the per-tick smoothing factor. It is applied once per render tick,
// not scaled by wall-clock time, so perceived smoothing speed follows the
// tick rate.
const Alpha = 0.05

// Smoother owns the displayed (smoothed) parameter state. Numeric fields and
// the color decay exponentially toward the target; the descriptive text is
// copied through unsmoothed. Color state is kept in linear RGB floats so the
// hex quantization of the output never stalls convergence.
type Smoother struct {
	alpha     float64
	speed     float64
	distort   float64
	col       [3]float64 // linear RGB
	displayed params.VisualParams
}

// NewSmoother starts with the displayed state equal to the initial value.
func NewSmoother(initial params.VisualParams) *Smoother {
	initial = params.Sanitize(initial)
	c, _ := params.ParseHex(initial.Color)
	r, g, b := c.LinearRgb()
	return &Smoother{
		alpha:     Alpha,
		speed:     initial.Speed,
		distort:   initial.Distort,
		col:       [3]float64{r, g, b},
		displayed: initial,
	}
}

// Advance blends the displayed state one tick toward target and returns it.
// Replacing the target mid-blend needs no coordination: the next tick simply
// decays toward the new value.
func (s *Smoother) Advance(target params.VisualParams) params.VisualParams {
	target = params.Sanitize(target)

	s.speed += (target.Speed - s.speed) * s.alpha
	s.distort += (target.Distort - s.distort) * s.alpha

	tc, _ := params.ParseHex(target.Color)
	tr, tg, tb := tc.LinearRgb()
	s.col[0] += (tr - s.col[0]) * s.alpha
	s.col[1] += (tg - s.col[1]) * s.alpha
	s.col[2] += (tb - s.col[2]) * s.alpha

	s.displayed = params.VisualParams{
		Color:       params.FormatHex(colorful.LinearRgb(s.col[0], s.col[1], s.col[2])),
		Speed:       s.speed,
		Distort:     s.distort,
		Phrase:      target.Phrase,
		Explanation: target.Explanation,
		Advice:      target.Advice,
	}
	return s.displayed
}

// Displayed returns the current smoothed state without advancing it.
func (s *Smoother) Displayed() params.VisualParams {
	return s.displayed
}
