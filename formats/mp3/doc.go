// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo at the stream's sample rate,
// reported as 16-bit content. Mono files are duplicated onto both channels
// by go-mp3 itself.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.ReadAll(src)
//
// Encoding is not supported.
package mp3
