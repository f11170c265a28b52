// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile indicates a missing "fLaC" signature or StreamInfo block
	ErrNotFlacFile = errors.New("not a FLAC file")

	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")

	// ErrCorruptFrame is returned when a frame's subframes disagree with the
	// stream layout
	ErrCorruptFrame = errors.New("corrupt FLAC frame")
)
