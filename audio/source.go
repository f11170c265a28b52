// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const (
	defaultReadSize = 4096
	maxEmptyReads   = 100
)

// ReadAll drains src into a Buffer. The source is not closed.
func ReadAll(src Source) (*Buffer, error) {
	channels := src.Channels()
	if err := validateLayout(src.SampleRate(), channels); err != nil {
		return nil, err
	}

	format := Int16
	if fr, ok := src.(FormatReporter); ok {
		format = fr.SampleFormat()
	}

	size := src.BufSize()
	if size <= 0 {
		size = defaultReadSize
	}
	// Keep reads frame aligned
	size -= size % channels
	if size == 0 {
		size = channels
	}

	var data []float32
	buf := make([]float32, size)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			data = append(data, buf[:n]...)
			empty = 0
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, fmt.Errorf("reading samples: %w", io.ErrNoProgress)
			}
		}
	}

	// Drop a trailing partial frame
	data = data[:len(data)-len(data)%channels]

	return newBuffer(src.SampleRate(), channels, format, data), nil
}

// bufferSource streams a Buffer through the Source interface.
type bufferSource struct {
	buf *Buffer
	pos int
}

// NewBufferSource returns a Source that reads the samples of b.
func NewBufferSource(b *Buffer) Source {
	return &bufferSource{buf: b}
}

func (s *bufferSource) SampleRate() int            { return s.buf.sampleRate }
func (s *bufferSource) Channels() int              { return s.buf.channels }
func (s *bufferSource) BufSize() int               { return defaultReadSize }
func (s *bufferSource) Close() error               { return nil }
func (s *bufferSource) SampleFormat() SampleFormat { return s.buf.format }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.buf.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.pos >= len(s.buf.data) {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.data[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.data) {
		return n, io.EOF
	}
	return n, nil
}
