// SPDX-License-Identifier: EPL-2.0

// Package player streams mixed buffers to an audio output.
//
// A Player owns one Device and runs at most one playback at a time on a
// background goroutine. Samples are converted to signed 16-bit PCM and
// written in ChunkDuration slices; a cancelled context or Stop is noticed
// between slices, so stopping takes at most one chunk.
//
// The system output lives in player/otodev.
package player
