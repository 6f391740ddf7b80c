package vis

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var densityRamp = []rune(" ·:+*#%@")

// Projector rasterizes a renderer's 3D primitive buffer onto a character
// grid. Points accumulate intensity per cell, so dense regions saturate
// through the density ramp; cell color is the intensity-weighted average,
// dimmed with depth.
type Projector struct {
	profile colorProfile
	cells   []projCell
	width   int
	height  int
}

type projCell struct {
	weight  float64
	r, g, b float64 // accumulated linear RGB, weighted
	depth   float64
}

func NewProjector() *Projector {
	return &Projector{profile: currentColorProfile()}
}

// Render draws the frame into a width×height block of text. It never fails;
// degenerate sizes yield an empty string.
func (pr *Projector) Render(f *Frame, width, height int) string {
	if f == nil || width < 4 || height < 2 {
		return ""
	}
	if pr.width != width || pr.height != height || pr.cells == nil {
		pr.width = width
		pr.height = height
		pr.cells = make([]projCell, width*height)
	} else {
		for i := range pr.cells {
			pr.cells[i] = projCell{}
		}
	}

	bound := f.Bound
	if bound <= 0 {
		bound = 1
	}
	camDist := bound * 2.8

	// Terminal cells are roughly twice as tall as wide.
	unit := math.Min(float64(width)/4, float64(height)/2) / bound * 0.92
	cx := float64(width) / 2
	cy := float64(height) / 2

	for _, p := range f.Points {
		if p.Alpha <= 0 {
			continue
		}
		persp := camDist / (camDist + p.Z)
		if persp <= 0 {
			continue
		}
		sx := int(cx + p.X*persp*unit*2)
		sy := int(cy - p.Y*persp*unit)
		if sx < 0 || sx >= width || sy < 0 || sy >= height {
			continue
		}

		w := p.Alpha * p.Size * persp
		lr, lg, lb := p.Color.LinearRgb()
		cell := &pr.cells[sy*width+sx]
		cell.weight += w
		cell.r += lr * w
		cell.g += lg * w
		cell.b += lb * w
		cell.depth += p.Z * w
	}

	var out strings.Builder
	out.Grow(width*height + height*8)
	color := newANSIState()

	for row := range height {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := range width {
			cell := pr.cells[row*width+col]
			if cell.weight <= 0 {
				out.WriteByte(' ')
				continue
			}

			// Soft-saturating intensity keeps crowded modes from clipping.
			v := cell.weight / (cell.weight + 1.1)
			idx := 1 + int(v*float64(len(densityRamp)-1))
			if idx >= len(densityRamp) {
				idx = len(densityRamp) - 1
			}

			if pr.profile == colorNone {
				out.WriteRune(densityRamp[idx])
				continue
			}

			avg := colorful.LinearRgb(
				clamp01(cell.r/cell.weight),
				clamp01(cell.g/cell.weight),
				clamp01(cell.b/cell.weight),
			)
			depth := cell.depth / cell.weight
			fade := clamp01(1 - depth/(bound*2.4))
			color.set(&out, toRGB(dim(avg, 0.45+0.55*fade)))
			out.WriteRune(densityRamp[idx])
		}
		color.reset(&out)
	}

	return out.String()
}
