// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC audio with github.com/mewkiz/flac.
//
// Frames are parsed one at a time and their per-channel subframes
// interleaved, so memory use is bounded by the largest frame. Any depth up
// to 32 bits is accepted; odd depths such as 12 or 20 bits report the next
// wider sample format.
package flac
