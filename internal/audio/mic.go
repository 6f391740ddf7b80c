package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

const (
	captureSampleRate = 44100
	captureFrames     = 256
	captureRingSize   = 1 << 14
)

// MicSource captures mono samples from the default input device via
// portaudio. The capture callback runs on portaudio's thread and only touches
// the ring.
type MicSource struct {
	ring    *sampleRing
	stream  *portaudio.Stream
	started bool
}

func NewMicSource() *MicSource {
	return &MicSource{ring: newSampleRing(captureRingSize)}
}

func (m *MicSource) Start() error {
	if m.started {
		return fmt.Errorf("microphone already capturing")
	}
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("initializing portaudio: %w", err)
	}

	stream, err := portaudio.OpenDefaultStream(1, 0, captureSampleRate, captureFrames, func(in []float32) {
		m.ring.WriteFloat32(in)
	})
	if err != nil {
		_ = portaudio.Terminate()
		return fmt.Errorf("opening capture stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return fmt.Errorf("starting capture stream: %w", err)
	}

	m.stream = stream
	m.started = true
	return nil
}

func (m *MicSource) Samples(dst []float64) int {
	return m.ring.Latest(dst)
}

func (m *MicSource) Stop() error {
	if !m.started {
		return nil
	}
	m.started = false
	err := m.stream.Stop()
	if cerr := m.stream.Close(); err == nil {
		err = cerr
	}
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	m.stream = nil
	return err
}
