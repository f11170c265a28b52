// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) audio with
// github.com/go-audio/aiff.
//
// Signed big-endian PCM at 8, 16, 24 or 32 bits is accepted, mono or stereo,
// at any sample rate. AIFF-C compression is not.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // e.g. 12-bit samples
//	}
//
// go-audio needs an io.ReadSeeker. Other readers are buffered in memory
// before decoding.
package aiff
