// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FullScale is the magnitude of the most negative value of a signed
// integer PCM sample with bits bits (e.g. 32768 for 16-bit).
func FullScale(bits int) float64 {
	return float64(int64(1) << (bits - 1))
}

// IntToFloat32 normalises a signed PCM sample to [-1, 1).
func IntToFloat32(v int, bits int) float32 {
	return float32(float64(v) / FullScale(bits))
}

// Float32ToInt scales x to a signed PCM sample of the given bit depth,
// rounding to nearest and clamping to the representable range.
func Float32ToInt(x float32, bits int) int {
	scale := FullScale(bits)
	v := math.Round(float64(x) * scale)

	if v > scale-1 {
		return int(scale - 1)
	}
	if v < -scale {
		return int(-scale)
	}
	return int(v)
}

func Float32ToInt16(x float32) int16 {
	return int16(Float32ToInt(x, 16))
}
