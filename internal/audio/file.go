package audio

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bogem/id3v2/v2"
	"github.com/ebitengine/oto/v3"
)

var (
	otoCtx     *oto.Context
	otoOnce    sync.Once
	otoInitErr error
)

// initOto creates the process-wide playback context on first use. Its rate
// and channel layout are fixed by the first file opened.
func initOto(sampleRate, channels int) (*oto.Context, error) {
	otoOnce.Do(func() {
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		})
		if otoInitErr == nil {
			<-ready
		}
	})
	return otoCtx, otoInitErr
}

// FileSource analyzes a local audio file instead of the microphone: the file
// plays through the speakers while every decoded sample is tapped into the
// analysis ring. Useful for demos and for driving the visuals without capture
// hardware.
type FileSource struct {
	path    string
	ring    *sampleRing
	file    *os.File
	player  *oto.Player
	title   string
	started bool
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, ring: newSampleRing(captureRingSize)}
}

func (f *FileSource) Start() error {
	if f.started {
		return fmt.Errorf("file source already playing")
	}

	file, err := os.Open(f.path)
	if err != nil {
		return fmt.Errorf("opening audio file: %w", err)
	}
	dec, err := newDecoder(file)
	if err != nil {
		file.Close()
		return err
	}

	ctx, err := initOto(dec.SampleRate(), dec.ChannelCount())
	if err != nil {
		file.Close()
		return fmt.Errorf("opening playback device: %w", err)
	}

	f.title = readTitle(f.path)
	f.file = file
	f.player = ctx.NewPlayer(&analysisTap{r: dec, ring: f.ring, channels: dec.ChannelCount()})
	f.player.Play()
	f.started = true
	return nil
}

func (f *FileSource) Samples(dst []float64) int {
	return f.ring.Latest(dst)
}

func (f *FileSource) Stop() error {
	if !f.started {
		return nil
	}
	f.started = false
	err := f.player.Close()
	if cerr := f.file.Close(); err == nil {
		err = cerr
	}
	f.player = nil
	f.file = nil
	return err
}

// Title is the track title from the file's tags, or the bare filename.
func (f *FileSource) Title() string {
	if f.title != "" {
		return f.title
	}
	base := filepath.Base(f.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func readTitle(path string) string {
	if strings.ToLower(filepath.Ext(path)) != ".mp3" {
		return ""
	}
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{"Title"}})
	if err != nil {
		return ""
	}
	defer tag.Close()
	return strings.TrimSpace(tag.Title())
}

// analysisTap passes PCM through to the player while mixing each frame down
// to a mono sample for the analyzer. When the track runs out it clears the
// ring, so the analyzer sees silence instead of the last window repeating.
type analysisTap struct {
	r        interface{ Read([]byte) (int, error) }
	ring     *sampleRing
	channels int
	mono     []float64
}

func (t *analysisTap) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil {
		t.ring.Clear()
		return n, err
	}
	if n > 0 {
		frameBytes := t.channels * 2
		frames := n / frameBytes
		if cap(t.mono) < frames {
			t.mono = make([]float64, frames)
		}
		for i := range frames {
			sum := 0.0
			for ch := range t.channels {
				off := i*frameBytes + ch*2
				sum += float64(int16(binary.LittleEndian.Uint16(p[off:])))
			}
			t.mono[i] = sum / float64(t.channels) / 32768
		}
		t.ring.Write(t.mono[:frames])
	}
	return n, err
}
