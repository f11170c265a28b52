// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrInvalidControlRange is returned when a volume or pan value is
	// outside its documented bounds.
	ErrInvalidControlRange = errors.New("control value out of range")

	// ErrEmptyInput is returned when a track is missing or holds no frames.
	ErrEmptyInput = errors.New("empty input")

	// ErrLengthMismatch and ErrChannelMismatch signal that Overlay was called
	// without aligning its inputs first.
	ErrLengthMismatch  = errors.New("buffer lengths differ")
	ErrChannelMismatch = errors.New("buffer channel counts differ")

	ErrSampleRateMismatch  = errors.New("buffer sample rates differ")
	ErrUnsupportedChannels = errors.New("only mono and stereo buffers are supported")
	ErrInvalidSampleRate   = errors.New("sample rate must be positive")
)
