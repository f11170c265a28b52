// SPDX-License-Identifier: EPL-2.0

// Package segment implements the random mode: two distinct files are drawn
// from a directory, a window of fixed length is cut at a random offset from
// each, and both windows are exported as WAV into a timestamped directory
// before being loaded for mixing.
//
// All randomness comes from a caller supplied *rand.Rand, so a fixed seed
// reproduces a session.
package segment
