// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Tone returns frames of interleaved sine samples at freq Hz with peak amp,
// identical on every channel.
func Tone(sampleRate, channels, frames int, freq float64, amp float32) []float32 {
	data := make([]float32, frames*channels)
	for f := range frames {
		t := float64(f) / float64(sampleRate)
		v := amp * float32(math.Sin(2*math.Pi*freq*t))
		for c := range channels {
			data[f*channels+c] = v
		}
	}
	return data
}

// Constant returns frames of interleaved samples all set to value.
func Constant(channels, frames int, value float32) []float32 {
	data := make([]float32, frames*channels)
	for i := range data {
		data[i] = value
	}
	return data
}

// Stereo returns frames of interleaved stereo with fixed left and right values.
func Stereo(frames int, left, right float32) []float32 {
	data := make([]float32, frames*2)
	for f := range frames {
		data[f*2] = left
		data[f*2+1] = right
	}
	return data
}

// Ramp returns frames of mono samples rising linearly from 0 towards amp.
// Useful where sample order matters.
func Ramp(frames int, amp float32) []float32 {
	data := make([]float32, frames)
	for f := range frames {
		data[f] = amp * float32(f) / float32(frames)
	}
	return data
}
