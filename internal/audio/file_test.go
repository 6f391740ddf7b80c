package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

func pcm16(samples ...int16) []byte {
	var buf []byte
	for _, s := range samples {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
	}
	return buf
}

func TestAnalysisTapDownmixesToMono(t *testing.T) {
	// Two stereo frames: (16384, 0) and (-32768, -32768).
	src := pcm16(16384, 0, -32768, -32768)
	ring := newSampleRing(8)
	tap := &analysisTap{r: bytes.NewReader(src), ring: ring, channels: 2}

	p := make([]byte, len(src))
	n, err := tap.Read(p)
	if err != nil || n != len(src) {
		t.Fatalf("Read() = %d, %v", n, err)
	}
	if !bytes.Equal(p, src) {
		t.Fatal("tap altered the PCM passed to the player")
	}

	dst := make([]float64, 2)
	if got := ring.Latest(dst); got != 2 {
		t.Fatalf("ring holds %d samples, want 2", got)
	}
	if math.Abs(dst[0]-0.25) > 1e-9 {
		t.Fatalf("frame 0 downmix = %v, want 0.25", dst[0])
	}
	if math.Abs(dst[1]+1) > 1e-9 {
		t.Fatalf("frame 1 downmix = %v, want -1", dst[1])
	}
}

func TestAnalysisTapClearsRingAtTrackEnd(t *testing.T) {
	src := pcm16(16384, 16384)
	ring := newSampleRing(8)
	tap := &analysisTap{r: bytes.NewReader(src), ring: ring, channels: 1}

	p := make([]byte, 64)
	if _, err := tap.Read(p); err != nil {
		t.Fatalf("first Read() error = %v", err)
	}
	if n := ring.Latest(make([]float64, 8)); n == 0 {
		t.Fatal("ring empty before track end")
	}

	if _, err := tap.Read(p); err != io.EOF {
		t.Fatalf("second Read() error = %v, want EOF", err)
	}
	if n := ring.Latest(make([]float64, 8)); n != 0 {
		t.Fatalf("ring holds %d samples after track end, want 0", n)
	}
}
