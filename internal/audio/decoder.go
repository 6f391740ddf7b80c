package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// pcmDecoder streams a file as interleaved 16-bit LE PCM. Analysis playback
// is strictly forward, so no seeking is needed.
type pcmDecoder interface {
	io.Reader
	SampleRate() int
	ChannelCount() int
}

// newDecoder picks a decoder by file extension.
func newDecoder(f *os.File) (pcmDecoder, error) {
	switch ext := strings.ToLower(filepath.Ext(f.Name())); ext {
	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return nil, fmt.Errorf("decoding mp3: %w", err)
		}
		return &mp3Stream{dec}, nil
	case ".wav":
		return newWAVStream(f)
	case ".flac":
		return newFLACStream(f)
	case ".ogg":
		return newOGGStream(f)
	default:
		return nil, fmt.Errorf("unsupported audio format %q", ext)
	}
}

// --- mp3: go-mp3 already emits 16-bit stereo at 44.1kHz ---

type mp3Stream struct {
	dec *mp3.Decoder
}

func (s *mp3Stream) Read(p []byte) (int, error) { return s.dec.Read(p) }
func (s *mp3Stream) SampleRate() int            { return s.dec.SampleRate() }
func (s *mp3Stream) ChannelCount() int          { return 2 }

// --- wav: 16-bit PCM streamed straight from the data chunk ---

type wavStream struct {
	file       *os.File
	remaining  int64
	sampleRate int
	channels   int
}

func newWAVStream(f *os.File) (*wavStream, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid wav file")
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("locating wav pcm data: %w", err)
	}
	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("unsupported wav bit depth %d (want 16)", dec.BitDepth)
	}
	return &wavStream{
		file:       f,
		remaining:  dec.PCMLen(),
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
	}, nil
}

func (s *wavStream) Read(p []byte) (int, error) {
	if s.remaining <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > s.remaining {
		p = p[:s.remaining]
	}
	n, err := s.file.Read(p)
	s.remaining -= int64(n)
	return n, err
}

func (s *wavStream) SampleRate() int   { return s.sampleRate }
func (s *wavStream) ChannelCount() int { return s.channels }

// --- flac: frames re-quantized to 16 bits ---

type flacStream struct {
	stream     *flac.Stream
	buf        []byte
	sampleRate int
	channels   int
	bps        int
}

func newFLACStream(f *os.File) (*flacStream, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("decoding flac: %w", err)
	}
	info := stream.Info
	return &flacStream{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bps:        int(info.BitsPerSample),
	}, nil
}

func (s *flacStream) Read(p []byte) (int, error) {
	if len(s.buf) == 0 {
		frame, err := s.stream.ParseNext()
		if err != nil {
			return 0, err
		}
		n := int(frame.Subframes[0].NSamples)
		s.buf = make([]byte, 0, n*s.channels*2)
		for i := range n {
			for ch := range s.channels {
				v := int(frame.Subframes[ch].Samples[i])
				if s.bps > 16 {
					v >>= s.bps - 16
				} else if s.bps < 16 {
					v <<= 16 - s.bps
				}
				s.buf = binary.LittleEndian.AppendUint16(s.buf, uint16(clampInt16(v)))
			}
		}
	}
	n := copy(p, s.buf)
	s.buf = s.buf[n:]
	return n, nil
}

func (s *flacStream) SampleRate() int   { return s.sampleRate }
func (s *flacStream) ChannelCount() int { return s.channels }

// --- ogg vorbis: float samples scaled to 16 bits ---

type oggStream struct {
	reader *oggvorbis.Reader
	fbuf   []float32
}

func newOGGStream(f *os.File) (*oggStream, error) {
	r, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decoding ogg: %w", err)
	}
	return &oggStream{reader: r}, nil
}

func (s *oggStream) Read(p []byte) (int, error) {
	want := len(p) / 2
	if want == 0 {
		return 0, nil
	}
	if cap(s.fbuf) < want {
		s.fbuf = make([]float32, want)
	}
	n, err := s.reader.Read(s.fbuf[:want])
	for i := range n {
		v := s.fbuf[i]
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		binary.LittleEndian.PutUint16(p[i*2:], uint16(int16(v*32767)))
	}
	if n == 0 && err == nil {
		err = io.EOF
	}
	return n * 2, err
}

func (s *oggStream) SampleRate() int   { return s.reader.SampleRate() }
func (s *oggStream) ChannelCount() int { return s.reader.Channels() }

func clampInt16(v int) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
