// SPDX-License-Identifier: EPL-2.0

package audio

// PadTo extends b with silence until it holds frames frames. Buffers that
// are already long enough are returned as is; nothing is ever truncated.
func PadTo(b *Buffer, frames int) *Buffer {
	if b.Frames() >= frames {
		return b
	}

	data := make([]float32, frames*b.channels)
	copy(data, b.data)
	return newBuffer(b.sampleRate, b.channels, b.format, data)
}

// AlignLengths pads the shorter of a and b with trailing silence so both
// have the same frame count. Equal buffers come back unchanged.
func AlignLengths(a, b *Buffer) (*Buffer, *Buffer, error) {
	if a == nil || b == nil {
		return nil, nil, ErrEmptyInput
	}

	frames := max(a.Frames(), b.Frames())
	return PadTo(a, frames), PadTo(b, frames), nil
}
