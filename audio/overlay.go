// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Overlay adds a and b sample by sample. Both must already share length,
// channel count and sample rate; AlignLengths takes care of the first.
// Sums are saturated to the range of the wider of the two formats.
func Overlay(a, b *Buffer) (*Buffer, error) {
	if a == nil || b == nil {
		return nil, ErrEmptyInput
	}
	if a.channels != b.channels {
		return nil, fmt.Errorf("overlay %d and %d channels: %w", a.channels, b.channels, ErrChannelMismatch)
	}
	if a.Frames() != b.Frames() {
		return nil, fmt.Errorf("overlay %d and %d frames: %w", a.Frames(), b.Frames(), ErrLengthMismatch)
	}
	if a.sampleRate != b.sampleRate {
		return nil, fmt.Errorf("overlay %d Hz and %d Hz: %w", a.sampleRate, b.sampleRate, ErrSampleRateMismatch)
	}

	format := Wider(a.format, b.format)
	out := make([]float32, len(a.data))
	for i := range out {
		out[i] = Saturate(a.data[i]+b.data[i], format)
	}

	return newBuffer(a.sampleRate, a.channels, format, out), nil
}
