// SPDX-License-Identifier: EPL-2.0

// Package otodev is the system audio output for package player, backed by
// github.com/ebitengine/oto/v3.
//
// oto permits one context per process, so every Device shares it and the
// first Open fixes sample rate and channel count. oto needs cgo and the
// platform audio headers (ALSA on Linux); keeping it here lets player and
// its users build without them.
package otodev
