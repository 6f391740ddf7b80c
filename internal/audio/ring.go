package audio

import "sync"

// sampleRing is a thread-safe circular buffer of mono samples. The capture
// callback writes from its own thread; the analysis tick reads the most
// recent window.
type sampleRing struct {
	mu   sync.Mutex
	buf  []float64
	w    int
	fill int
}

func newSampleRing(size int) *sampleRing {
	return &sampleRing{buf: make([]float64, size)}
}

// Write appends samples, overwriting the oldest when full.
func (r *sampleRing) Write(samples []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range samples {
		r.buf[r.w] = s
		r.w = (r.w + 1) % len(r.buf)
	}
	r.fill += len(samples)
	if r.fill > len(r.buf) {
		r.fill = len(r.buf)
	}
}

// WriteFloat32 is Write for capture-format samples, converting under the
// lock so callers on the capture thread need no scratch buffer.
func (r *sampleRing) WriteFloat32(samples []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range samples {
		r.buf[r.w] = float64(s)
		r.w = (r.w + 1) % len(r.buf)
	}
	r.fill += len(samples)
	if r.fill > len(r.buf) {
		r.fill = len(r.buf)
	}
}

// Clear drops all buffered samples.
func (r *sampleRing) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.w = 0
	r.fill = 0
}

// Latest copies the most recent len(dst) samples into dst and reports how
// many were available.
func (r *sampleRing) Latest(dst []float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(dst)
	if n > r.fill {
		n = r.fill
	}
	if n == 0 {
		return 0
	}
	start := (r.w - n + len(r.buf)) % len(r.buf)
	for i := range n {
		dst[i] = r.buf[(start+i)%len(r.buf)]
	}
	return n
}
