// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
)

// go-mp3 always produces interleaved stereo 16-bit little-endian PCM
const (
	outputChannels = 2
	bytesPerSample = 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	// odd byte left over from the previous Read
	carry    []byte
	finished bool
}

func (s *source) SampleRate() int                  { return s.sampleRate }
func (s *source) Channels() int                    { return outputChannels }
func (s *source) SampleFormat() audio.SampleFormat { return audio.Int16 }
func (s *source) Close() error                     { return nil }
func (s *source) BufSize() int                     { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.finished && len(s.carry) == 0 {
		return 0, io.EOF
	}

	need := len(dst) * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	have := copy(s.buf, s.carry)
	s.carry = s.carry[:0]

	var err error
	if !s.finished {
		var n int
		n, err = s.dec.Read(s.buf[have:])
		have += n
	}

	if err == io.EOF {
		s.finished = true
		err = nil
	}
	if err != nil {
		return 0, fmt.Errorf("decoding mp3 frame: %w", err)
	}

	samples := have / bytesPerSample
	if rest := have % bytesPerSample; rest != 0 && !s.finished {
		s.carry = append(s.carry, s.buf[have-rest:have]...)
	}

	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))
		dst[i] = utils.IntToFloat32(int(v), 16)
	}

	if samples == 0 && s.finished {
		return 0, io.EOF
	}
	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
