// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// Buffer is a fully decoded block of PCM audio. Samples are interleaved
// float32 values in [-1, 1]. A Buffer is never modified after construction;
// every processing stage returns a new one.
type Buffer struct {
	sampleRate int
	channels   int
	format     SampleFormat
	data       []float32
}

// NewBuffer validates the layout and copies data into a new Buffer.
func NewBuffer(sampleRate, channels int, format SampleFormat, data []float32) (*Buffer, error) {
	if err := validateLayout(sampleRate, channels); err != nil {
		return nil, err
	}
	if len(data)%channels != 0 {
		return nil, ErrInvalidDstSize
	}

	owned := make([]float32, len(data))
	copy(owned, data)

	return newBuffer(sampleRate, channels, format, owned), nil
}

// Silence returns frames of zero-amplitude audio.
func Silence(sampleRate, channels int, format SampleFormat, frames int) (*Buffer, error) {
	if err := validateLayout(sampleRate, channels); err != nil {
		return nil, err
	}
	if frames < 0 {
		frames = 0
	}

	return newBuffer(sampleRate, channels, format, make([]float32, frames*channels)), nil
}

// newBuffer takes ownership of data without copying.
func newBuffer(sampleRate, channels int, format SampleFormat, data []float32) *Buffer {
	return &Buffer{
		sampleRate: sampleRate,
		channels:   channels,
		format:     format,
		data:       data,
	}
}

func validateLayout(sampleRate, channels int) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if channels != 1 && channels != 2 {
		return ErrUnsupportedChannels
	}
	return nil
}

func (b *Buffer) SampleRate() int      { return b.sampleRate }
func (b *Buffer) Channels() int        { return b.channels }
func (b *Buffer) Format() SampleFormat { return b.format }
func (b *Buffer) IsMono() bool         { return b.channels == 1 }
func (b *Buffer) IsStereo() bool       { return b.channels == 2 }

// Frames is the duration in samples per channel.
func (b *Buffer) Frames() int { return len(b.data) / b.channels }

// Duration of the buffer at its sample rate.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.sampleRate)
}

// FramesFor converts d into a frame count at the buffer's sample rate.
func (b *Buffer) FramesFor(d time.Duration) int {
	return FramesFor(b.sampleRate, d)
}

// FramesFor converts d into a frame count at sampleRate. Whole seconds
// and the remainder are scaled separately so long durations do not
// overflow.
func FramesFor(sampleRate int, d time.Duration) int {
	secs, rem := d/time.Second, d%time.Second
	return int(secs)*sampleRate + int(rem)*sampleRate/int(time.Second)
}

// Sample returns the value at frame for channel ch.
func (b *Buffer) Sample(frame, ch int) float32 {
	return b.data[frame*b.channels+ch]
}

// Samples returns a copy of the interleaved sample data.
func (b *Buffer) Samples() []float32 {
	out := make([]float32, len(b.data))
	copy(out, b.data)
	return out
}

// Peak is the largest absolute sample value across all channels.
func (b *Buffer) Peak() float32 {
	return peak(b.data)
}

// ChannelPeak is the largest absolute sample value of channel ch.
func (b *Buffer) ChannelPeak(ch int) float32 {
	var p float32
	for i := ch; i < len(b.data); i += b.channels {
		s := b.data[i]
		if s < 0 {
			s = -s
		}
		if s > p {
			p = s
		}
	}
	return p
}

// Slice returns frames [start, end) as a new buffer. Bounds are clamped to
// the buffer.
func (b *Buffer) Slice(start, end int) *Buffer {
	frames := b.Frames()
	start = min(max(start, 0), frames)
	end = min(max(end, start), frames)

	out := make([]float32, (end-start)*b.channels)
	copy(out, b.data[start*b.channels:end*b.channels])

	return newBuffer(b.sampleRate, b.channels, b.format, out)
}

// Equal reports whether both buffers share layout and identical samples.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == o {
		return true
	}
	if b == nil || o == nil {
		return false
	}
	if b.sampleRate != o.sampleRate || b.channels != o.channels || b.format != o.format || len(b.data) != len(o.data) {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

func (b *Buffer) clone() *Buffer {
	return newBuffer(b.sampleRate, b.channels, b.format, b.Samples())
}

func isEmpty(b *Buffer) bool {
	return b == nil || len(b.data) == 0
}

func peak(data []float32) float32 {
	var p float32
	for _, s := range data {
		if s < 0 {
			s = -s
		}
		if s > p {
			p = s
		}
	}
	return p
}
