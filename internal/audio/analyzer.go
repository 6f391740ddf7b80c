// Package audio captures a live sample stream, computes per-band spectral
// energy on a fixed analysis tick, and patches the color/speed/distort fields
// of the parameter cell. Capture sources are pluggable: a microphone, a local
// audio file, or a stub in tests.
package audio

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

const (
	// Analysis transform: 256 windowed samples yielding 128 magnitude bins.
	fftSize  = 256
	binCount = fftSize / 2

	// Per-bin exponential smoothing across successive analysis ticks.
	spectralSmoothing = 0.8

	// A full-scale sine under a Hann window peaks at fftSize/4; magnitudes
	// are normalized against this.
	maxMagnitude = float64(fftSize) / 4
)

// Levels is the ephemeral per-tick band energy snapshot. Values are
// sensitivity-scaled averages and may exceed 1; nothing clamps them here.
type Levels struct {
	Bass    float64
	Mid     float64
	Treble  float64
	Overall float64
}

// Analyzer turns raw mono samples into smoothed per-band energy. One instance
// belongs to one engine; it is not safe for concurrent use.
type Analyzer struct {
	window   [fftSize]float64
	smoothed [binCount]float64
	input    [fftSize]float64
}

func NewAnalyzer() *Analyzer {
	a := &Analyzer{}
	for i := range a.window {
		a.window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(fftSize-1)))
	}
	return a
}

// Process ingests the most recent analysis window (up to fftSize mono
// samples; shorter input is zero-padded at the front) and updates the
// smoothed magnitude spectrum.
func (a *Analyzer) Process(samples []float64) {
	if len(samples) > fftSize {
		samples = samples[len(samples)-fftSize:]
	}
	pad := fftSize - len(samples)
	for i := range pad {
		a.input[i] = 0
	}
	for i, s := range samples {
		a.input[pad+i] = s * a.window[pad+i]
	}

	spectrum := fft.FFTReal(a.input[:])
	for i := range binCount {
		mag := cmplx.Abs(spectrum[i])
		a.smoothed[i] = a.smoothed[i]*spectralSmoothing + mag*(1-spectralSmoothing)
	}
}

// bandRanges partitions n bins into three contiguous index ranges by bin
// fraction, not frequency: bass is the first 10%, mid the next 40%, treble
// the rest. Each range is non-empty and the union is exhaustive.
func bandRanges(n int) (bassEnd, midEnd int) {
	bassEnd = int(math.Round(float64(n) * 0.10))
	if bassEnd < 1 {
		bassEnd = 1
	}
	midEnd = int(math.Round(float64(n) * 0.50))
	if midEnd <= bassEnd {
		midEnd = bassEnd + 1
	}
	if midEnd >= n {
		midEnd = n - 1
	}
	return bassEnd, midEnd
}

// Levels averages the smoothed spectrum per band, normalizes against the
// maximum representable magnitude and applies sensitivity. Results can exceed
// 1; capping happens where a value is applied.
func (a *Analyzer) Levels(sensitivity float64) Levels {
	bassEnd, midEnd := bandRanges(binCount)

	avg := func(lo, hi int) float64 {
		sum := 0.0
		for i := lo; i < hi; i++ {
			sum += a.smoothed[i]
		}
		return sum / float64(hi-lo) / maxMagnitude * sensitivity
	}

	l := Levels{
		Bass:   avg(0, bassEnd),
		Mid:    avg(bassEnd, midEnd),
		Treble: avg(midEnd, binCount),
	}
	l.Overall = (l.Bass + l.Mid + l.Treble) / 3
	return l
}
