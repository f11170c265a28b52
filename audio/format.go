// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// SampleFormat is the numeric representation a buffer was decoded from and
// is exported to. Samples are always held as float32 in [-1, 1]; the format
// decides the representable range used when results are saturated.
type SampleFormat int

const (
	Int16 SampleFormat = iota
	Int8
	Int24
	Int32
	Float32
)

// FormatForBitDepth maps an integer PCM bit depth to its SampleFormat.
func FormatForBitDepth(bits int) (SampleFormat, bool) {
	switch bits {
	case 8:
		return Int8, true
	case 16:
		return Int16, true
	case 24:
		return Int24, true
	case 32:
		return Int32, true
	}
	return Int16, false
}

// ContainerFormat returns the narrowest integer SampleFormat able to hold
// bits bits, so 12-bit audio maps to Int16 and 20-bit to Int24. Depths
// outside 1..32 are rejected.
func ContainerFormat(bits int) (SampleFormat, bool) {
	switch {
	case bits < 1 || bits > 32:
		return Int16, false
	case bits <= 8:
		return Int8, true
	case bits <= 16:
		return Int16, true
	case bits <= 24:
		return Int24, true
	default:
		return Int32, true
	}
}

// BitDepth of the format. Float32 reports 32.
func (f SampleFormat) BitDepth() int {
	switch f {
	case Int8:
		return 8
	case Int24:
		return 24
	case Int32, Float32:
		return 32
	default:
		return 16
	}
}

// IsFloat reports whether f is a floating point format.
func (f SampleFormat) IsFloat() bool { return f == Float32 }

// Max is the largest representable normalised sample. Integer formats are
// asymmetric: the positive side stops one step short of 1.0.
func (f SampleFormat) Max() float32 {
	if f.IsFloat() {
		return 1
	}
	full := float64(int64(1) << (f.BitDepth() - 1))
	return float32((full - 1) / full)
}

// Min is the smallest representable normalised sample.
func (f SampleFormat) Min() float32 { return -1 }

func (f SampleFormat) rank() int {
	switch f {
	case Int8:
		return 1
	case Int16:
		return 2
	case Int24:
		return 3
	case Int32:
		return 4
	case Float32:
		return 5
	}
	return 0
}

// Wider returns whichever of a and b can represent more values.
func Wider(a, b SampleFormat) SampleFormat {
	if b.rank() > a.rank() {
		return b
	}
	return a
}

func (f SampleFormat) String() string {
	switch f {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int24:
		return "int24"
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	}
	return fmt.Sprintf("SampleFormat(%d)", int(f))
}

// Saturate clamps x to the representable range of f instead of letting it
// wrap when converted back to integer PCM.
func Saturate(x float32, f SampleFormat) float32 {
	if hi := f.Max(); x > hi {
		return hi
	}
	if lo := f.Min(); x < lo {
		return lo
	}
	return x
}
