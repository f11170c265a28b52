// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio with github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes straight to float, so sources report audio.Float32 and
// buffers built from them saturate at full scale rather than at an integer
// limit. Streams with more than two channels decode, but audio.ReadAll
// rejects them with audio.ErrUnsupportedChannels.
package vorbis
