// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of frame on channel ch.
type Waveform func(frame, ch int) float32

// MockSource streams a generated waveform through the audio.Source method
// set without importing the audio package, so its internal tests can use
// it. Options mimic awkward decoders: short reads, stalls and late errors.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to produce
	pos        int // frames produced so far
	wave       Waveform

	bufSize int
	maxRead int   // cap on frames per ReadSamples, 0 for none
	stalls  int   // empty reads left before data flows
	err     error // returned instead of io.EOF once exhausted
}

// NewMockSource returns a source of frames frames of wave.
func NewMockSource(sampleRate, channels, frames int, wave Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		wave:       wave,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewSineSource produces a full-scale sine at freq Hz on every channel.
func NewSineSource(sampleRate, channels, frames int, freq float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(frame) / float64(sampleRate)))
	})
}

// WithBufSize changes the read size reported to consumers.
func (m *MockSource) WithBufSize(n int) *MockSource {
	m.bufSize = n
	return m
}

// WithMaxRead limits every read to at most n frames.
func (m *MockSource) WithMaxRead(n int) *MockSource {
	m.maxRead = n
	return m
}

// WithStalls makes the first n reads return no data and no error.
func (m *MockSource) WithStalls(n int) *MockSource {
	m.stalls = n
	return m
}

// WithError makes the source fail with err once all frames are read.
func (m *MockSource) WithError(err error) *MockSource {
	m.err = err
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

func (m *MockSource) BufSize() int {
	if m.bufSize > 0 {
		return m.bufSize
	}
	return 4096
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.stalls > 0 {
		m.stalls--
		return 0, nil
	}
	if m.pos >= m.frames {
		if m.err != nil {
			return 0, m.err
		}
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	if m.maxRead > 0 {
		n = min(n, m.maxRead)
	}

	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.wave(m.pos+f, ch)
		}
	}
	m.pos += n

	return n * m.channels, nil
}
