// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

const (
	// MinVolume and MaxVolume bound the volume control.
	MinVolume = 0
	MaxVolume = 100

	// GainRangeDB is the attenuation applied at volume 0. The mapping is
	// linear in dB: every volume step removes GainRangeDB/100 dB.
	GainRangeDB = 20.0
)

// DBToLinear converts a gain in decibels to an amplitude factor.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts an amplitude factor to decibels. A zero factor
// returns -Inf.
func LinearToDB(factor float64) float64 {
	return 20 * math.Log10(factor)
}

// ValidateVolume returns ErrInvalidControlRange for values outside
// [MinVolume, MaxVolume].
func ValidateVolume(volume int) error {
	if volume < MinVolume || volume > MaxVolume {
		return fmt.Errorf("volume %d not in [%d,%d]: %w", volume, MinVolume, MaxVolume, ErrInvalidControlRange)
	}
	return nil
}

// VolumeToDB maps a volume percentage to the attenuation it applies, as a
// non-positive gain in dB.
func VolumeToDB(volume int) float64 {
	return -float64(MaxVolume-volume) / MaxVolume * GainRangeDB
}

// ApplyGain attenuates b according to a 0..100 volume control. Volume 100
// returns an identical copy, volume 0 attenuates by GainRangeDB.
func ApplyGain(b *Buffer, volume int) (*Buffer, error) {
	if isEmpty(b) {
		return nil, ErrEmptyInput
	}
	if err := ValidateVolume(volume); err != nil {
		return nil, err
	}

	return ApplyGainDB(b, VolumeToDB(volume)), nil
}

// ApplyGainDB scales every sample of b by db decibels. Positive values
// boost and are saturated to the buffer's format.
func ApplyGainDB(b *Buffer, db float64) *Buffer {
	if db == 0 {
		return b.clone()
	}

	factor := float32(DBToLinear(db))
	out := make([]float32, len(b.data))
	for i, s := range b.data {
		out[i] = Saturate(s*factor, b.format)
	}
	return newBuffer(b.sampleRate, b.channels, b.format, out)
}

// Normalize scales b so its peak sits headroomDB below full scale. Silent
// buffers are returned unchanged.
func Normalize(b *Buffer, headroomDB float64) *Buffer {
	p := b.Peak()
	if p == 0 {
		return b.clone()
	}

	target := DBToLinear(-headroomDB) * float64(b.format.Max())
	return ApplyGainDB(b, LinearToDB(target/float64(p)))
}
