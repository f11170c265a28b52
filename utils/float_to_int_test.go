// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0, 0},
		{"full negative", -1, math.MinInt16},
		{"largest positive", 32767.0 / 32768.0, math.MaxInt16},
		{"clamp over max", 1.5, math.MaxInt16},
		{"clamp under min", -1.5, math.MinInt16},
		{"half", 0.5, 16384},
		{"rounds to nearest", 0.001, 33}, // 32.768
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits     int
		min, max int
	}{
		{8, -128, 127},
		{16, math.MinInt16, math.MaxInt16},
		{24, -8388608, 8388607},
		{32, math.MinInt32, math.MaxInt32},
	}

	for _, tt := range tests {
		if got := Float32ToInt(2, tt.bits); got != tt.max {
			t.Errorf("Float32ToInt(2, %d) = %d, want %d", tt.bits, got, tt.max)
		}
		if got := Float32ToInt(-2, tt.bits); got != tt.min {
			t.Errorf("Float32ToInt(-2, %d) = %d, want %d", tt.bits, got, tt.min)
		}
	}
}

func TestIntToFloat32_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{8, 16, 24} {
		full := int(FullScale(bits))
		for _, v := range []int{-full, -1, 0, 1, full / 3, full - 1} {
			if got := Float32ToInt(IntToFloat32(v, bits), bits); got != v {
				t.Errorf("%d-bit round trip of %d = %d", bits, v, got)
			}
		}
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	b.ReportAllocs()

	x := float32(0.3)
	for b.Loop() {
		_ = Float32ToInt16(x)
	}
}
