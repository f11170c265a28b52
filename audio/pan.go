// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

const (
	// PanLimit bounds the pan control to [-PanLimit, PanLimit]. Zero is
	// centred, negative values lean left and positive values lean right.
	PanLimit = 100

	// PanRangeDB is the attenuation applied to the opposite channel at a
	// full left or full right pan.
	PanRangeDB = 20.0

	// NormalizeHeadroomDB is the headroom left below full scale when
	// PanOptions.Normalize is set.
	NormalizeHeadroomDB = 0.1
)

// PanOptions configures ApplyPan.
type PanOptions struct {
	// Normalize brings each channel to its own peak after attenuation.
	// This undoes much of the level difference the pan created, so it is
	// off unless asked for.
	Normalize bool
}

// ValidatePan returns ErrInvalidControlRange for values outside
// [-PanLimit, PanLimit].
func ValidatePan(pan int) error {
	if pan < -PanLimit || pan > PanLimit {
		return fmt.Errorf("pan %d not in [%d,%d]: %w", pan, -PanLimit, PanLimit, ErrInvalidControlRange)
	}
	return nil
}

// PanGainsDB returns the gain in dB applied to the left and right channel
// for a pan value. Only one side is ever attenuated.
func PanGainsDB(pan int) (left, right float64) {
	fraction := float64(pan) / PanLimit
	switch {
	case fraction < 0:
		return 0, fraction * PanRangeDB
	case fraction > 0:
		return -fraction * PanRangeDB, 0
	}
	return 0, 0
}

// ApplyPan balances b between the left and right channel. The result is
// always stereo; mono input is duplicated into both channels first.
func ApplyPan(b *Buffer, pan int, opts PanOptions) (*Buffer, error) {
	if isEmpty(b) {
		return nil, ErrEmptyInput
	}
	if err := ValidatePan(pan); err != nil {
		return nil, err
	}

	channels := SplitToMono(EnsureStereo(b))
	left, right := channels[0], channels[1]

	leftDB, rightDB := PanGainsDB(pan)
	if leftDB != 0 {
		left = ApplyGainDB(left, leftDB)
	}
	if rightDB != 0 {
		right = ApplyGainDB(right, rightDB)
	}

	if opts.Normalize {
		left = Normalize(left, NormalizeHeadroomDB)
		right = Normalize(right, NormalizeHeadroomDB)
	}

	return FromMono(left, right)
}
