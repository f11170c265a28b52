// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameReader is the part of flac.Stream the source needs, to allow testing
type frameReader interface {
	ParseNext() (*frame.Frame, error)
}

// source interleaves the per-channel subframes of each FLAC frame.
type source struct {
	stream     frameReader
	sampleRate int
	channels   int
	bitDepth   int
	format     audio.SampleFormat
	// decoded samples of the current frame not yet handed out
	pending []float32
	done    bool
}

func (s *source) SampleRate() int                  { return s.sampleRate }
func (s *source) Channels() int                    { return s.channels }
func (s *source) SampleFormat() audio.SampleFormat { return s.format }
func (s *source) BufSize() int                     { return 4096 - 4096%s.channels }

// Close is a no-op. The caller owns the reader handed to Decode.
func (s *source) Close() error { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(dst) {
		if len(s.pending) == 0 {
			if s.done {
				break
			}
			if err := s.next(); err != nil {
				return n, err
			}
			continue
		}

		c := copy(dst[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (s *source) next() error {
	f, err := s.stream.ParseNext()
	if errors.Is(err, io.EOF) {
		s.done = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("parsing FLAC frame: %w", err)
	}
	if len(f.Subframes) != s.channels {
		return fmt.Errorf("frame has %d subframes, stream has %d channels: %w",
			len(f.Subframes), s.channels, ErrCorruptFrame)
	}

	frames := len(f.Subframes[0].Samples)
	if cap(s.pending) < frames*s.channels {
		s.pending = make([]float32, frames*s.channels)
	}
	s.pending = s.pending[:frames*s.channels]

	for ch, sub := range f.Subframes {
		if len(sub.Samples) != frames {
			return fmt.Errorf("subframe %d has %d samples, want %d: %w",
				ch, len(sub.Samples), frames, ErrCorruptFrame)
		}
		for i, v := range sub.Samples {
			s.pending[i*s.channels+ch] = utils.IntToFloat32(int(v), s.bitDepth)
		}
	}

	return nil
}

// newSource keeps the stream's real bit depth for scaling and reports the
// narrowest SampleFormat that holds it, so 12 and 20-bit streams decode.
func newSource(stream frameReader, sampleRate, channels, bitDepth int) (*source, error) {
	format, ok := audio.ContainerFormat(bitDepth)
	if !ok {
		return nil, fmt.Errorf("%d bits: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	return &source{
		stream:     stream,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
		format:     format,
	}, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	return newSource(stream,
		int(stream.Info.SampleRate),
		int(stream.Info.NChannels),
		int(stream.Info.BitsPerSample),
	)
}
