// SPDX-License-Identifier: EPL-2.0

package audio

// SplitToMono returns one independent mono buffer per channel. A mono
// buffer yields a single copy of itself.
func SplitToMono(b *Buffer) []*Buffer {
	if b.channels == 1 {
		return []*Buffer{b.clone()}
	}

	frames := b.Frames()
	out := make([]*Buffer, b.channels)
	for c := range b.channels {
		data := make([]float32, frames)
		for f := range frames {
			data[f] = b.data[f*b.channels+c]
		}
		out[c] = newBuffer(b.sampleRate, 1, b.format, data)
	}
	return out
}

// FromMono interleaves two mono buffers into one stereo buffer. The
// shorter side is padded with silence.
func FromMono(left, right *Buffer) (*Buffer, error) {
	if left.channels != 1 || right.channels != 1 {
		return nil, ErrChannelMismatch
	}
	if left.sampleRate != right.sampleRate {
		return nil, ErrSampleRateMismatch
	}

	frames := max(len(left.data), len(right.data))
	data := make([]float32, frames*2)
	for f := range frames {
		idx := f << 1 // f * 2
		if f < len(left.data) {
			data[idx] = left.data[f]
		}
		if f < len(right.data) {
			data[idx+1] = right.data[f]
		}
	}

	return newBuffer(left.sampleRate, 2, Wider(left.format, right.format), data), nil
}

// EnsureStereo duplicates a mono buffer into two identical channels.
// Stereo input is returned as is.
func EnsureStereo(b *Buffer) *Buffer {
	if b.channels == 2 {
		return b
	}

	data := make([]float32, len(b.data)*2)
	for f, s := range b.data {
		data[f<<1] = s
		data[f<<1+1] = s
	}
	return newBuffer(b.sampleRate, 2, b.format, data)
}
